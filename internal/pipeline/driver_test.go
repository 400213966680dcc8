package pipeline_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"chirp/internal/logging"
	"chirp/internal/pipeline"
	"chirp/internal/tone"
)

type sliceSource struct {
	frames []pipeline.Frame
	next   int
}

func (s *sliceSource) Next(_ context.Context) (pipeline.Frame, error) {
	if s.next >= len(s.frames) {
		return pipeline.Frame{}, io.EOF
	}
	frame := s.frames[s.next]
	s.next++
	return frame, nil
}

type recordedItem struct {
	token string
	raw   string
}

type recordingSink struct {
	items  []recordedItem
	reject error
}

func (r *recordingSink) Enqueue(correlationToken, raw string) error {
	if r.reject != nil {
		return r.reject
	}
	r.items = append(r.items, recordedItem{token: correlationToken, raw: raw})
	return nil
}

func segmentFor(t *testing.T, text string) tone.Segment {
	t.Helper()
	samples, err := tone.Encode(text, 8000, time.Second, tone.Options{})
	if err != nil {
		t.Fatalf("Encode(%q): %v", text, err)
	}
	return tone.Segment{Channels: [][]float64{samples}, SampleRate: 8000}
}

func TestRunDecodesFramesInOrder(t *testing.T) {
	source := &sliceSource{frames: []pipeline.Frame{
		{CorrelationToken: "frame-1", Audio: segmentFor(t, "@")},
		{CorrelationToken: "frame-2", Audio: segmentFor(t, "HI")},
	}}
	sink := &recordingSink{}

	driver, err := pipeline.NewDriver(source, sink, tone.Options{}, logging.NewNop())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	if err := driver.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := []recordedItem{
		{token: "frame-1", raw: "@"},
		{token: "frame-2", raw: "HI"},
	}
	if len(sink.items) != len(want) {
		t.Fatalf("enqueued %d items, want %d", len(sink.items), len(want))
	}
	for i, item := range want {
		if sink.items[i] != item {
			t.Fatalf("item %d = %+v, want %+v", i, sink.items[i], item)
		}
	}
}

func TestRunSkipsEmptyAudioFrames(t *testing.T) {
	source := &sliceSource{frames: []pipeline.Frame{
		{CorrelationToken: "frame-1"},
		{CorrelationToken: "frame-2", Audio: segmentFor(t, "@")},
	}}
	sink := &recordingSink{}

	driver, err := pipeline.NewDriver(source, sink, tone.Options{}, logging.NewNop())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	if err := driver.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(sink.items) != 1 || sink.items[0].token != "frame-2" {
		t.Fatalf("items = %+v, want only frame-2", sink.items)
	}
}

func TestRunSynthesizesTokenForBlankVisualPlane(t *testing.T) {
	source := &sliceSource{frames: []pipeline.Frame{
		{CorrelationToken: "   ", Audio: segmentFor(t, "@")},
	}}
	sink := &recordingSink{}

	driver, err := pipeline.NewDriver(source, sink, tone.Options{}, logging.NewNop())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	if err := driver.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(sink.items) != 1 {
		t.Fatalf("enqueued %d items, want 1", len(sink.items))
	}
	if sink.items[0].token == "" || sink.items[0].token == "   " {
		t.Fatalf("token %q not synthesized", sink.items[0].token)
	}
}

func TestRunContinuesPastEnqueueRejection(t *testing.T) {
	source := &sliceSource{frames: []pipeline.Frame{
		{CorrelationToken: "frame-1", Audio: segmentFor(t, "@")},
		{CorrelationToken: "frame-2", Audio: segmentFor(t, "@")},
	}}
	sink := &recordingSink{reject: errors.New("queue closed")}

	driver, err := pipeline.NewDriver(source, sink, tone.Options{}, logging.NewNop())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	if err := driver.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(sink.items) != 0 {
		t.Fatalf("items = %+v, want none", sink.items)
	}
}

func TestNewDriverRequiresSourceAndSink(t *testing.T) {
	if _, err := pipeline.NewDriver(nil, &recordingSink{}, tone.Options{}, nil); err == nil {
		t.Fatal("NewDriver accepted nil source")
	}
	if _, err := pipeline.NewDriver(&sliceSource{}, nil, tone.Options{}, nil); err == nil {
		t.Fatal("NewDriver accepted nil sink")
	}
}
