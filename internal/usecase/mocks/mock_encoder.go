//	mockgen -source=internal/usecase/encoder.go -destination=internal/usecase/mocks/mock_encoder.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	domain "github.com/iho/fintrack/internal/domain"
	usecase "github.com/iho/fintrack/internal/usecase"
	gomock "go.uber.org/mock/gomock"
)

// MockPendingReceipt is a mock of PendingReceipt interface.
type MockPendingReceipt struct {
	ctrl     *gomock.Controller
	recorder *MockPendingReceiptMockRecorder
	isgomock struct{}
}

// MockPendingReceiptMockRecorder is the mock recorder for MockPendingReceipt.
type MockPendingReceiptMockRecorder struct {
	mock *MockPendingReceipt
}

// NewMockPendingReceipt creates a new mock instance.
func NewMockPendingReceipt(ctrl *gomock.Controller) *MockPendingReceipt {
	mock := &MockPendingReceipt{ctrl: ctrl}
	mock.recorder = &MockPendingReceiptMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPendingReceipt) EXPECT() *MockPendingReceiptMockRecorder {
	return m.recorder
}

// Wait mocks base method.
func (m *MockPendingReceipt) Wait(ctx context.Context) (*domain.Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Wait", ctx)
	ret0, _ := ret[0].(*domain.Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Wait indicates an expected call of Wait.
func (mr *MockPendingReceiptMockRecorder) Wait(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Wait", reflect.TypeOf((*MockPendingReceipt)(nil).Wait), ctx)
}

// MockReceiptEncoder is a mock of ReceiptEncoder interface.
type MockReceiptEncoder struct {
	ctrl     *gomock.Controller
	recorder *MockReceiptEncoderMockRecorder
	isgomock struct{}
}

// MockReceiptEncoderMockRecorder is the mock recorder for MockReceiptEncoder.
type MockReceiptEncoderMockRecorder struct {
	mock *MockReceiptEncoder
}

// NewMockReceiptEncoder creates a new mock instance.
func NewMockReceiptEncoder(ctrl *gomock.Controller) *MockReceiptEncoder {
	mock := &MockReceiptEncoder{ctrl: ctrl}
	mock.recorder = &MockReceiptEncoderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReceiptEncoder) EXPECT() *MockReceiptEncoderMockRecorder {
	return m.recorder
}

// Encode mocks base method.
func (m *MockReceiptEncoder) Encode(ctx context.Context, file usecase.RawFile) usecase.PendingReceipt {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Encode", ctx, file)
	ret0, _ := ret[0].(usecase.PendingReceipt)
	return ret0
}

// Encode indicates an expected call of Encode.
func (mr *MockReceiptEncoderMockRecorder) Encode(ctx, file any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Encode", reflect.TypeOf((*MockReceiptEncoder)(nil).Encode), ctx, file)
}
