// Code generated by MockGen. DO NOT EDIT.
// Source: chat_service.go
//
// Generated by this command:
//
//	mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	contract "dmchat/contract"
	chat "dmchat/domain/chat"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIChatService is a mock of IChatService interface.
type MockIChatService struct {
	ctrl     *gomock.Controller
	recorder *MockIChatServiceMockRecorder
	isgomock struct{}
}

// MockIChatServiceMockRecorder is the mock recorder for MockIChatService.
type MockIChatServiceMockRecorder struct {
	mock *MockIChatService
}

// NewMockIChatService creates a new mock instance.
func NewMockIChatService(ctrl *gomock.Controller) *MockIChatService {
	mock := &MockIChatService{ctrl: ctrl}
	mock.recorder = &MockIChatServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIChatService) EXPECT() *MockIChatServiceMockRecorder {
	return m.recorder
}

// GetHistory mocks base method.
func (m *MockIChatService) GetHistory(ctx context.Context, cmd chat.GetHistoryCommand) ([]chat.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHistory", ctx, cmd)
	ret0, _ := ret[0].([]chat.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHistory indicates an expected call of GetHistory.
func (mr *MockIChatServiceMockRecorder) GetHistory(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHistory", reflect.TypeOf((*MockIChatService)(nil).GetHistory), ctx, cmd)
}

// ListContacts mocks base method.
func (m *MockIChatService) ListContacts(ctx context.Context, currentUserID, searchTerm string) ([]chat.Presence, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListContacts", ctx, currentUserID, searchTerm)
	ret0, _ := ret[0].([]chat.Presence)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListContacts indicates an expected call of ListContacts.
func (mr *MockIChatServiceMockRecorder) ListContacts(ctx, currentUserID, searchTerm any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListContacts", reflect.TypeOf((*MockIChatService)(nil).ListContacts), ctx, currentUserID, searchTerm)
}

// Login mocks base method.
func (m *MockIChatService) Login(ctx context.Context, userID string) ([]chat.Presence, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, userID)
	ret0, _ := ret[0].([]chat.Presence)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Login indicates an expected call of Login.
func (mr *MockIChatServiceMockRecorder) Login(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockIChatService)(nil).Login), ctx, userID)
}

// Logout mocks base method.
func (m *MockIChatService) Logout(ctx context.Context, userID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Logout", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Logout indicates an expected call of Logout.
func (mr *MockIChatServiceMockRecorder) Logout(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Logout", reflect.TypeOf((*MockIChatService)(nil).Logout), ctx, userID)
}

// SearchHistory mocks base method.
func (m *MockIChatService) SearchHistory(ctx context.Context, cmd chat.SearchHistoryCommand) ([]chat.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchHistory", ctx, cmd)
	ret0, _ := ret[0].([]chat.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchHistory indicates an expected call of SearchHistory.
func (mr *MockIChatServiceMockRecorder) SearchHistory(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchHistory", reflect.TypeOf((*MockIChatService)(nil).SearchHistory), ctx, cmd)
}

// SendMessage mocks base method.
func (m *MockIChatService) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (chat.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMessage", ctx, cmd)
	ret0, _ := ret[0].(chat.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendMessage indicates an expected call of SendMessage.
func (mr *MockIChatServiceMockRecorder) SendMessage(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMessage", reflect.TypeOf((*MockIChatService)(nil).SendMessage), ctx, cmd)
}

// Subscribe mocks base method.
func (m *MockIChatService) Subscribe(topic string, sink contract.EventSink) (contract.Subscription, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Subscribe", topic, sink)
	ret0, _ := ret[0].(contract.Subscription)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Subscribe indicates an expected call of Subscribe.
func (mr *MockIChatServiceMockRecorder) Subscribe(topic, sink any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Subscribe", reflect.TypeOf((*MockIChatService)(nil).Subscribe), topic, sink)
}

// Unsubscribe mocks base method.
func (m *MockIChatService) Unsubscribe(sub contract.Subscription) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Unsubscribe", sub)
}

// Unsubscribe indicates an expected call of Unsubscribe.
func (mr *MockIChatServiceMockRecorder) Unsubscribe(sub any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unsubscribe", reflect.TypeOf((*MockIChatService)(nil).Unsubscribe), sub)
}
