// Code generated by MockGen. DO NOT EDIT.
// Source: conversation.go
//
// Generated by this command:
//
//	mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	chat "dmchat/domain/chat"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIConversationRepository is a mock of IConversationRepository interface.
type MockIConversationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIConversationRepositoryMockRecorder
	isgomock struct{}
}

// MockIConversationRepositoryMockRecorder is the mock recorder for MockIConversationRepository.
type MockIConversationRepositoryMockRecorder struct {
	mock *MockIConversationRepository
}

// NewMockIConversationRepository creates a new mock instance.
func NewMockIConversationRepository(ctrl *gomock.Controller) *MockIConversationRepository {
	mock := &MockIConversationRepository{ctrl: ctrl}
	mock.recorder = &MockIConversationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIConversationRepository) EXPECT() *MockIConversationRepositoryMockRecorder {
	return m.recorder
}

// AppendMessage mocks base method.
func (m *MockIConversationRepository) AppendMessage(message chat.Message) (chat.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AppendMessage", message)
	ret0, _ := ret[0].(chat.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AppendMessage indicates an expected call of AppendMessage.
func (mr *MockIConversationRepositoryMockRecorder) AppendMessage(message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AppendMessage", reflect.TypeOf((*MockIConversationRepository)(nil).AppendMessage), message)
}

// MessagesSince mocks base method.
func (m *MockIConversationRepository) MessagesSince(ctx context.Context, id chat.ConversationID, sinceSeq uint64) ([]chat.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MessagesSince", ctx, id, sinceSeq)
	ret0, _ := ret[0].([]chat.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MessagesSince indicates an expected call of MessagesSince.
func (mr *MockIConversationRepositoryMockRecorder) MessagesSince(ctx, id, sinceSeq any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MessagesSince", reflect.TypeOf((*MockIConversationRepository)(nil).MessagesSince), ctx, id, sinceSeq)
}
