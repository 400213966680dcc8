package ipc_test

import (
	"context"
	"testing"
	"time"

	"chirp/internal/daemon"
	"chirp/internal/ipc"
	"chirp/internal/logging"
	"chirp/internal/testsupport"
)

func newServerAndClient(t *testing.T) (*daemon.Daemon, *ipc.Client) {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	d, err := daemon.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}

	server, err := ipc.NewServer(context.Background(), cfg.SocketPath(), d, logging.NewNop())
	if err != nil {
		t.Fatalf("ipc.NewServer: %v", err)
	}
	server.Serve()
	t.Cleanup(func() {
		server.Close()
		d.Stop()
	})

	client, err := ipc.Dial(cfg.SocketPath())
	if err != nil {
		t.Fatalf("ipc.Dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return d, client
}

func TestStartStatusStopRoundTrip(t *testing.T) {
	_, client := newServerAndClient(t)

	startResp, err := client.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !startResp.Started {
		t.Fatalf("Start rejected: %s", startResp.Message)
	}

	status, err := client.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !status.Running || status.State != "running" {
		t.Fatalf("status = %+v, want running", status)
	}
	if status.PID <= 0 {
		t.Fatalf("status PID = %d, want positive", status.PID)
	}

	stopResp, err := client.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !stopResp.Stopped {
		t.Fatal("Stop reported not stopped")
	}

	status, err = client.Status()
	if err != nil {
		t.Fatalf("Status after stop: %v", err)
	}
	if status.Running || status.State != "stopped" {
		t.Fatalf("status after stop = %+v, want stopped", status)
	}
}

func TestSecondStartIsNoOp(t *testing.T) {
	_, client := newServerAndClient(t)

	if resp, err := client.Start(); err != nil || !resp.Started {
		t.Fatalf("first Start = %+v, %v", resp, err)
	}
	resp, err := client.Start()
	if err != nil {
		t.Fatalf("second Start transport error: %v", err)
	}
	if !resp.Started {
		t.Fatalf("second Start rejected: %s", resp.Message)
	}
}

func TestEnqueueAppliesParameter(t *testing.T) {
	d, client := newServerAndClient(t)

	if resp, err := client.Start(); err != nil || !resp.Started {
		t.Fatalf("Start = %+v, %v", resp, err)
	}

	resp, err := client.Enqueue("frame-1", "SET VOLUME 11")
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if !resp.Accepted {
		t.Fatalf("Enqueue rejected: %s", resp.Message)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if value, ok := d.GetParameter("VOLUME"); ok {
			if value != "11" {
				t.Fatalf("VOLUME = %q, want 11", value)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("parameter never applied")
		}
		time.Sleep(10 * time.Millisecond)
	}

	got, err := client.ParamGet("VOLUME")
	if err != nil {
		t.Fatalf("ParamGet: %v", err)
	}
	if !got.Present || got.Value != "11" {
		t.Fatalf("ParamGet = %+v, want VOLUME=11", got)
	}

	list, err := client.ParamList()
	if err != nil {
		t.Fatalf("ParamList: %v", err)
	}
	if list.Parameters["VOLUME"] != "11" {
		t.Fatalf("ParamList = %+v, want VOLUME=11", list.Parameters)
	}
}

func TestEnqueueWhileStoppedRejected(t *testing.T) {
	_, client := newServerAndClient(t)

	resp, err := client.Enqueue("frame-1", "NOOP")
	if err != nil {
		t.Fatalf("Enqueue transport error: %v", err)
	}
	if resp.Accepted {
		t.Fatal("Enqueue accepted while daemon stopped")
	}
}

func TestTaskList(t *testing.T) {
	d, client := newServerAndClient(t)
	d.RegisterTask("DISPLAY", func(context.Context, string) {})
	d.RegisterTask("ALERT", func(context.Context, string) {})

	resp, err := client.TaskList()
	if err != nil {
		t.Fatalf("TaskList: %v", err)
	}
	want := []string{"ALERT", "DISPLAY"}
	if len(resp.Tasks) != len(want) {
		t.Fatalf("TaskList = %v, want %v", resp.Tasks, want)
	}
	for i := range want {
		if resp.Tasks[i] != want[i] {
			t.Fatalf("TaskList = %v, want %v", resp.Tasks, want)
		}
	}
}
