package supervisor

import (
	"syscall"
	"testing"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name         string
		procs        []Process
		wantCode     int
		wantFailedID int
	}{
		{
			name: "all success",
			procs: []Process{
				{ID: 0, Status: StatusExited, ExitCode: 0},
				{ID: 1, Status: StatusExited, ExitCode: 0},
			},
			wantCode:     0,
			wantFailedID: -1,
		},
		{
			name: "max exit code wins",
			procs: []Process{
				{ID: 0, Status: StatusExited, ExitCode: 1},
				{ID: 1, Status: StatusExited, ExitCode: 3},
				{ID: 2, Status: StatusExited, ExitCode: 2},
			},
			wantCode:     3,
			wantFailedID: 1,
		},
		{
			name: "signaled contributes 128 plus signal",
			procs: []Process{
				{ID: 0, Status: StatusExited, ExitCode: 2},
				{ID: 1, Status: StatusSignaled, Signal: syscall.SIGTERM},
			},
			wantCode:     128 + 15,
			wantFailedID: 1,
		},
		{
			name: "killed contributes the kill sentinel",
			procs: []Process{
				{ID: 0, Status: StatusExited, ExitCode: 0},
				{ID: 1, Status: StatusKilled, Signal: syscall.SIGKILL},
			},
			wantCode:     137,
			wantFailedID: 1,
		},
		{
			name: "ties resolve to earliest ordinal",
			procs: []Process{
				{ID: 0, Status: StatusExited, ExitCode: 0},
				{ID: 1, Status: StatusExited, ExitCode: 2},
				{ID: 2, Status: StatusExited, ExitCode: 2},
			},
			wantCode:     2,
			wantFailedID: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.procs)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", got.Code, tt.wantCode)
			}
			if got.FailedID != tt.wantFailedID {
				t.Errorf("FailedID = %d, want %d", got.FailedID, tt.wantFailedID)
			}
			if got.Success() != (tt.wantCode == 0) {
				t.Errorf("Success() = %v, want %v", got.Success(), tt.wantCode == 0)
			}
		})
	}
}
