// Code generated by MockGen. DO NOT EDIT.
// Source: search.go
//
// Generated by this command:
//
//	mockgen -source=search.go -destination=../mocks/mock_search_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	chat "dmchat/domain/chat"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockISearchRepository is a mock of ISearchRepository interface.
type MockISearchRepository struct {
	ctrl     *gomock.Controller
	recorder *MockISearchRepositoryMockRecorder
	isgomock struct{}
}

// MockISearchRepositoryMockRecorder is the mock recorder for MockISearchRepository.
type MockISearchRepositoryMockRecorder struct {
	mock *MockISearchRepository
}

// NewMockISearchRepository creates a new mock instance.
func NewMockISearchRepository(ctrl *gomock.Controller) *MockISearchRepository {
	mock := &MockISearchRepository{ctrl: ctrl}
	mock.recorder = &MockISearchRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISearchRepository) EXPECT() *MockISearchRepositoryMockRecorder {
	return m.recorder
}

// Index mocks base method.
func (m *MockISearchRepository) Index(message chat.Message) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Index", message)
	ret0, _ := ret[0].(error)
	return ret0
}

// Index indicates an expected call of Index.
func (mr *MockISearchRepositoryMockRecorder) Index(message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Index", reflect.TypeOf((*MockISearchRepository)(nil).Index), message)
}

// Search mocks base method.
func (m *MockISearchRepository) Search(ctx context.Context, id chat.ConversationID, query string) ([]chat.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, id, query)
	ret0, _ := ret[0].([]chat.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Search indicates an expected call of Search.
func (mr *MockISearchRepositoryMockRecorder) Search(ctx, id, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockISearchRepository)(nil).Search), ctx, id, query)
}
