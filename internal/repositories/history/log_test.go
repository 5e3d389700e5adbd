package history

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func entries(t *testing.T, l *RingLog) []string {
	t.Helper()
	var out []string
	next := 1
	for i, line := range l.All() {
		if i != next {
			t.Fatalf("All() yielded index %d, want %d", i, next)
		}
		next++
		out = append(out, line)
	}
	return out
}

func newRing(t *testing.T, capacity int) *RingLog {
	t.Helper()
	l, ok := NewRingLog(capacity).(*RingLog)
	if !ok {
		t.Fatal("NewRingLog() did not return a *RingLog")
	}
	return l
}

func TestNewRingLog(t *testing.T) {
	l := newRing(t, -5)
	if len(l.lines) != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", len(l.lines), DefaultCapacity)
	}
}

func TestRingLog_Add(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		add      []string
		want     []string
	}{
		{name: "empty", capacity: 3, add: nil, want: nil},
		{name: "under capacity", capacity: 3, add: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "at capacity", capacity: 3, add: []string{"a", "b", "c"}, want: []string{"a", "b", "c"}},
		{name: "oldest evicted", capacity: 3, add: []string{"a", "b", "c", "d"}, want: []string{"b", "c", "d"}},
		{name: "wraps twice", capacity: 2, add: []string{"a", "b", "c", "d", "e"}, want: []string{"d", "e"}},
		{name: "duplicates kept", capacity: 3, add: []string{"ls", "ls"}, want: []string{"ls", "ls"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newRing(t, tt.capacity)
			for _, line := range tt.add {
				l.Add(line)
			}
			if diff := cmp.Diff(tt.want, entries(t, l)); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
			if l.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", l.Len(), len(tt.want))
			}
		})
	}
}

func TestRingLog_CapacityPlusOne(t *testing.T) {
	const n = 100
	l := newRing(t, n)
	for i := 0; i <= n; i++ {
		l.Add(fmt.Sprintf("cmd %d", i))
	}
	if l.Len() != n {
		t.Fatalf("Len() = %d, want %d", l.Len(), n)
	}
	if first, _ := l.Get(0); first != "cmd 1" {
		t.Errorf("oldest = %q, want %q", first, "cmd 1")
	}
	if last, _ := l.Get(n - 1); last != fmt.Sprintf("cmd %d", n) {
		t.Errorf("newest = %q, want %q", last, fmt.Sprintf("cmd %d", n))
	}
}

func TestRingLog_Get(t *testing.T) {
	l := newRing(t, 2)
	l.Add("a")
	l.Add("b")
	l.Add("c")

	tests := []struct {
		index  int
		want   string
		wantOK bool
	}{
		{index: -1, want: "", wantOK: false},
		{index: 0, want: "b", wantOK: true},
		{index: 1, want: "c", wantOK: true},
		{index: 2, want: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.index), func(t *testing.T) {
			got, ok := l.Get(tt.index)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Get(%d) = (%q, %v), want (%q, %v)", tt.index, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
