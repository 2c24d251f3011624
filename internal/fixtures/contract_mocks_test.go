// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fixtures_test
//

// Package fixtures_test is a generated GoMock package.
package fixtures_test

import (
	context "context"
	entities "dispatch/internal/entities"
	logger "dispatch/pkg/logger"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockUserService is a mock of UserService interface.
type MockUserService struct {
	ctrl     *gomock.Controller
	recorder *MockUserServiceMockRecorder
	isgomock struct{}
}

// MockUserServiceMockRecorder is the mock recorder for MockUserService.
type MockUserServiceMockRecorder struct {
	mock *MockUserService
}

// NewMockUserService creates a new mock instance.
func NewMockUserService(ctrl *gomock.Controller) *MockUserService {
	mock := &MockUserService{ctrl: ctrl}
	mock.recorder = &MockUserServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserService) EXPECT() *MockUserServiceMockRecorder {
	return m.recorder
}

// CreateUser mocks base method.
func (m *MockUserService) CreateUser(ctx context.Context, userModify entities.UserModify) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", ctx, userModify)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateUser indicates an expected call of CreateUser.
func (mr *MockUserServiceMockRecorder) CreateUser(ctx, userModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUser", reflect.TypeOf((*MockUserService)(nil).CreateUser), ctx, userModify)
}

// MockAddressService is a mock of AddressService interface.
type MockAddressService struct {
	ctrl     *gomock.Controller
	recorder *MockAddressServiceMockRecorder
	isgomock struct{}
}

// MockAddressServiceMockRecorder is the mock recorder for MockAddressService.
type MockAddressServiceMockRecorder struct {
	mock *MockAddressService
}

// NewMockAddressService creates a new mock instance.
func NewMockAddressService(ctrl *gomock.Controller) *MockAddressService {
	mock := &MockAddressService{ctrl: ctrl}
	mock.recorder = &MockAddressServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAddressService) EXPECT() *MockAddressServiceMockRecorder {
	return m.recorder
}

// CreateAddress mocks base method.
func (m *MockAddressService) CreateAddress(ctx context.Context, addressModify entities.AddressModify) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAddress", ctx, addressModify)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateAddress indicates an expected call of CreateAddress.
func (mr *MockAddressServiceMockRecorder) CreateAddress(ctx, addressModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAddress", reflect.TypeOf((*MockAddressService)(nil).CreateAddress), ctx, addressModify)
}

// CreateCity mocks base method.
func (m *MockAddressService) CreateCity(ctx context.Context, cityModify entities.CityModify) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCity", ctx, cityModify)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCity indicates an expected call of CreateCity.
func (mr *MockAddressServiceMockRecorder) CreateCity(ctx, cityModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCity", reflect.TypeOf((*MockAddressService)(nil).CreateCity), ctx, cityModify)
}

// CreateCountry mocks base method.
func (m *MockAddressService) CreateCountry(ctx context.Context, countryModify entities.CountryModify) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCountry", ctx, countryModify)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCountry indicates an expected call of CreateCountry.
func (mr *MockAddressServiceMockRecorder) CreateCountry(ctx, countryModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCountry", reflect.TypeOf((*MockAddressService)(nil).CreateCountry), ctx, countryModify)
}

// GetCities mocks base method.
func (m *MockAddressService) GetCities(ctx context.Context, filter entities.CityFilter) ([]entities.City, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCities", ctx, filter)
	ret0, _ := ret[0].([]entities.City)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCities indicates an expected call of GetCities.
func (mr *MockAddressServiceMockRecorder) GetCities(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCities", reflect.TypeOf((*MockAddressService)(nil).GetCities), ctx, filter)
}

// GetCountries mocks base method.
func (m *MockAddressService) GetCountries(ctx context.Context) ([]entities.Country, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCountries", ctx)
	ret0, _ := ret[0].([]entities.Country)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCountries indicates an expected call of GetCountries.
func (mr *MockAddressServiceMockRecorder) GetCountries(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCountries", reflect.TypeOf((*MockAddressService)(nil).GetCountries), ctx)
}

// MockseedLogger is a mock of seedLogger interface.
type MockseedLogger struct {
	ctrl     *gomock.Controller
	recorder *MockseedLoggerMockRecorder
	isgomock struct{}
}

// MockseedLoggerMockRecorder is the mock recorder for MockseedLogger.
type MockseedLoggerMockRecorder struct {
	mock *MockseedLogger
}

// NewMockseedLogger creates a new mock instance.
func NewMockseedLogger(ctrl *gomock.Controller) *MockseedLogger {
	mock := &MockseedLogger{ctrl: ctrl}
	mock.recorder = &MockseedLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockseedLogger) EXPECT() *MockseedLoggerMockRecorder {
	return m.recorder
}

// Info mocks base method.
func (m *MockseedLogger) Info(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MockseedLoggerMockRecorder) Info(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockseedLogger)(nil).Info), varargs...)
}
