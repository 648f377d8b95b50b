package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_IsOpen(t *testing.T) {
	assert.True(t, RequestPending.IsOpen())
	assert.True(t, RequestAccepted.IsOpen())
	assert.False(t, RequestCompleted.IsOpen())
	assert.False(t, RequestAllRejected.IsOpen())
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	assert.False(t, RequestPending.IsTerminal())
	assert.False(t, RequestAccepted.IsTerminal())
	assert.True(t, RequestCompleted.IsTerminal())
	assert.True(t, RequestAllRejected.IsTerminal())
}

func TestAllNotifiedRejected(t *testing.T) {
	tests := []struct {
		name     string
		notified []int64
		rejected []int64
		want     bool
	}{
		{"все отказались", []int64{1, 2}, []int64{1, 2}, true},
		{"порядок не важен", []int64{1, 2}, []int64{2, 1}, true},
		{"отказалась часть", []int64{1, 2}, []int64{1}, false},
		{"никто не отказался", []int64{1, 2}, nil, false},
		// Пустой список оповещенных не эскалируется
		{"пустой список оповещенных", nil, nil, false},
		{"лишние отказы не мешают", []int64{1}, []int64{1, 9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllNotifiedRejected(tt.notified, tt.rejected))
		})
	}
}

func TestEmergencyRequest_IsRejectedBy(t *testing.T) {
	request := &EmergencyRequest{
		NotifiedHospitalIDs: []int64{1, 2},
		RejectedHospitalIDs: []int64{2},
	}

	assert.True(t, request.IsNotified(1))
	assert.False(t, request.IsNotified(3))
	assert.True(t, request.IsRejectedBy(2))
	assert.False(t, request.IsRejectedBy(1))
}
