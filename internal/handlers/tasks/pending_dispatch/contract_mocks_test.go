// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pending_dispatch_test
//

// Package pending_dispatch_test is a generated GoMock package.
package pending_dispatch_test

import (
	context "context"
	logger "dispatch/pkg/logger"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockService is a mock of Service interface.
type MockService struct {
	ctrl     *gomock.Controller
	recorder *MockServiceMockRecorder
	isgomock struct{}
}

// MockServiceMockRecorder is the mock recorder for MockService.
type MockServiceMockRecorder struct {
	mock *MockService
}

// NewMockService creates a new mock instance.
func NewMockService(ctrl *gomock.Controller) *MockService {
	mock := &MockService{ctrl: ctrl}
	mock.recorder = &MockServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockService) EXPECT() *MockServiceMockRecorder {
	return m.recorder
}

// DispatchPending mocks base method.
func (m *MockService) DispatchPending(ctx context.Context, batchSize int) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DispatchPending", ctx, batchSize)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DispatchPending indicates an expected call of DispatchPending.
func (mr *MockServiceMockRecorder) DispatchPending(ctx, batchSize any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DispatchPending", reflect.TypeOf((*MockService)(nil).DispatchPending), ctx, batchSize)
}

// MocktaskLogger is a mock of taskLogger interface.
type MocktaskLogger struct {
	ctrl     *gomock.Controller
	recorder *MocktaskLoggerMockRecorder
	isgomock struct{}
}

// MocktaskLoggerMockRecorder is the mock recorder for MocktaskLogger.
type MocktaskLoggerMockRecorder struct {
	mock *MocktaskLogger
}

// NewMocktaskLogger creates a new mock instance.
func NewMocktaskLogger(ctrl *gomock.Controller) *MocktaskLogger {
	mock := &MocktaskLogger{ctrl: ctrl}
	mock.recorder = &MocktaskLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MocktaskLogger) EXPECT() *MocktaskLoggerMockRecorder {
	return m.recorder
}

// Info mocks base method.
func (m *MocktaskLogger) Info(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MocktaskLoggerMockRecorder) Info(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MocktaskLogger)(nil).Info), varargs...)
}

// With mocks base method.
func (m *MocktaskLogger) With(fields ...logger.Field) logger.Logger {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "With", varargs...)
	ret0, _ := ret[0].(logger.Logger)
	return ret0
}

// With indicates an expected call of With.
func (mr *MocktaskLoggerMockRecorder) With(fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "With", reflect.TypeOf((*MocktaskLogger)(nil).With), fields...)
}
