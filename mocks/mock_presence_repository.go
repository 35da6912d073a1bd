// Code generated by MockGen. DO NOT EDIT.
// Source: presence.go
//
// Generated by this command:
//
//	mockgen -source=presence.go -destination=../mocks/mock_presence_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	chat "dmchat/domain/chat"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockIPresenceRepository is a mock of IPresenceRepository interface.
type MockIPresenceRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIPresenceRepositoryMockRecorder
	isgomock struct{}
}

// MockIPresenceRepositoryMockRecorder is the mock recorder for MockIPresenceRepository.
type MockIPresenceRepositoryMockRecorder struct {
	mock *MockIPresenceRepository
}

// NewMockIPresenceRepository creates a new mock instance.
func NewMockIPresenceRepository(ctrl *gomock.Controller) *MockIPresenceRepository {
	mock := &MockIPresenceRepository{ctrl: ctrl}
	mock.recorder = &MockIPresenceRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIPresenceRepository) EXPECT() *MockIPresenceRepositoryMockRecorder {
	return m.recorder
}

// MarkOffline mocks base method.
func (m *MockIPresenceRepository) MarkOffline(userID string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkOffline", userID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkOffline indicates an expected call of MarkOffline.
func (mr *MockIPresenceRepositoryMockRecorder) MarkOffline(userID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkOffline", reflect.TypeOf((*MockIPresenceRepository)(nil).MarkOffline), userID, at)
}

// MarkOnline mocks base method.
func (m *MockIPresenceRepository) MarkOnline(userID string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkOnline", userID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkOnline indicates an expected call of MarkOnline.
func (mr *MockIPresenceRepositoryMockRecorder) MarkOnline(userID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkOnline", reflect.TypeOf((*MockIPresenceRepository)(nil).MarkOnline), userID, at)
}

// Snapshot mocks base method.
func (m *MockIPresenceRepository) Snapshot() ([]chat.Presence, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Snapshot")
	ret0, _ := ret[0].([]chat.Presence)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Snapshot indicates an expected call of Snapshot.
func (mr *MockIPresenceRepositoryMockRecorder) Snapshot() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Snapshot", reflect.TypeOf((*MockIPresenceRepository)(nil).Snapshot))
}

// Touch mocks base method.
func (m *MockIPresenceRepository) Touch(userID string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Touch", userID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// Touch indicates an expected call of Touch.
func (mr *MockIPresenceRepositoryMockRecorder) Touch(userID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Touch", reflect.TypeOf((*MockIPresenceRepository)(nil).Touch), userID, at)
}
