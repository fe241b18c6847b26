package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockBlobStorage is a mock implementation of service.BlobStorage.
type MockBlobStorage struct {
	mock.Mock
}

// NewMockBlobStorage creates a mock bound to the test's lifecycle.
func NewMockBlobStorage(t *testing.T) *MockBlobStorage {
	m := &MockBlobStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBlobStorage) Upload(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)

	return args.Error(0)
}

func (m *MockBlobStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}

func (m *MockBlobStorage) DownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)

	return args.String(0), args.Error(1)
}
