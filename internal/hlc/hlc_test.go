package hlc

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New("node-a", 1000)

	assert.Equal(t, int64(1000), v.WallMillis, "WallMillis should be now")
	assert.Equal(t, int64(0), v.Counter, "Initial counter should be 0")
	assert.Equal(t, "node-a", v.NodeID)
}

func TestTick(t *testing.T) {
	tests := []struct {
		name      string
		local     Value
		now       int64
		wantWall  int64
		wantCount int64
	}{
		{
			name:      "wall clock moved forward",
			local:     Value{WallMillis: 1000, Counter: 5, NodeID: "node-a"},
			now:       2000,
			wantWall:  2000,
			wantCount: 0,
		},
		{
			name:      "same millisecond increments counter",
			local:     Value{WallMillis: 1000, Counter: 5, NodeID: "node-a"},
			now:       1000,
			wantWall:  1000,
			wantCount: 6,
		},
		{
			name:      "wall clock regression keeps local time",
			local:     Value{WallMillis: 1000, Counter: 5, NodeID: "node-a"},
			now:       500,
			wantWall:  1000,
			wantCount: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tick(tt.local, tt.now)

			assert.Equal(t, tt.wantWall, got.WallMillis)
			assert.Equal(t, tt.wantCount, got.Counter)
			assert.Equal(t, tt.local.NodeID, got.NodeID, "NodeID should survive the tick")
			assert.True(t, tt.local.Before(got), "Tick result must be strictly greater")
		})
	}
}

func TestTick_RapidCallsSameMillisecond(t *testing.T) {
	// Пример из свойств: два Tick внутри одной миллисекунды
	v := New("nodeA", 1000)

	v1 := Tick(v, 1000)
	v2 := Tick(v1, 1000)

	assert.Equal(t, Value{WallMillis: 1000, Counter: 1, NodeID: "nodeA"}, v1)
	assert.Equal(t, Value{WallMillis: 1000, Counter: 2, NodeID: "nodeA"}, v2)
}

func TestTick_Monotonicity(t *testing.T) {
	v := New("node-a", 1000)

	previous := v
	for i := 0; i < 100; i++ {
		current := Tick(previous, 1000) // wall clock застыл
		assert.True(t, previous.Before(current), "Tick should always increase")
		previous = current
	}
}

func TestReceive(t *testing.T) {
	tests := []struct {
		name   string
		local  Value
		remote Value
		now    int64
		want   Value
	}{
		{
			name:   "same millisecond on both sides takes max counter",
			local:  Value{WallMillis: 1000, Counter: 2, NodeID: "nodeA"},
			remote: Value{WallMillis: 1000, Counter: 5, NodeID: "nodeB"},
			now:    1000,
			want:   Value{WallMillis: 1000, Counter: 6, NodeID: "nodeA"},
		},
		{
			name:   "remote is ahead",
			local:  Value{WallMillis: 1000, Counter: 9, NodeID: "nodeA"},
			remote: Value{WallMillis: 2000, Counter: 3, NodeID: "nodeB"},
			now:    1500,
			want:   Value{WallMillis: 2000, Counter: 4, NodeID: "nodeA"},
		},
		{
			name:   "local is ahead",
			local:  Value{WallMillis: 3000, Counter: 1, NodeID: "nodeA"},
			remote: Value{WallMillis: 2000, Counter: 7, NodeID: "nodeB"},
			now:    2500,
			want:   Value{WallMillis: 3000, Counter: 2, NodeID: "nodeA"},
		},
		{
			name:   "wall clock ahead of both resets counter",
			local:  Value{WallMillis: 1000, Counter: 4, NodeID: "nodeA"},
			remote: Value{WallMillis: 1500, Counter: 9, NodeID: "nodeB"},
			now:    5000,
			want:   Value{WallMillis: 5000, Counter: 0, NodeID: "nodeA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Receive(tt.local, tt.remote, tt.now)

			assert.Equal(t, tt.want, got)
			// Merged value всегда >= обоих входов
			assert.GreaterOrEqual(t, Compare(got, tt.local), 0, "result must be >= local")
			remoteAsLocal := Value{WallMillis: tt.remote.WallMillis, Counter: tt.remote.Counter, NodeID: tt.local.NodeID}
			assert.GreaterOrEqual(t, Compare(got, remoteAsLocal), 0, "result must be >= remote")
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    Value
		b    Value
		want int
	}{
		{
			name: "wall millis dominates",
			a:    Value{WallMillis: 1, Counter: 99, NodeID: "z"},
			b:    Value{WallMillis: 2, Counter: 0, NodeID: "a"},
			want: -1,
		},
		{
			name: "counter breaks wall tie",
			a:    Value{WallMillis: 5, Counter: 3, NodeID: "a"},
			b:    Value{WallMillis: 5, Counter: 2, NodeID: "z"},
			want: 1,
		},
		{
			name: "node id breaks full tie",
			a:    Value{WallMillis: 5, Counter: 3, NodeID: "a"},
			b:    Value{WallMillis: 5, Counter: 3, NodeID: "b"},
			want: -1,
		},
		{
			name: "equal values",
			a:    Value{WallMillis: 5, Counter: 3, NodeID: "a"},
			b:    Value{WallMillis: 5, Counter: 3, NodeID: "a"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	values := []Value{
		{WallMillis: 0, Counter: 0, NodeID: "n"},
		{WallMillis: 1719849600000, Counter: 42, NodeID: "node-a"},
		{WallMillis: 999999999999999, Counter: 99999, NodeID: "3f2c"},
	}

	for _, v := range values {
		got, err := Unpack(Pack(v))
		require.NoError(t, err)
		assert.Equal(t, v, got, "unpack(pack(v)) must equal v")
	}
}

func TestPack_LexicographicOrderMatchesCompare(t *testing.T) {
	values := []Value{
		{WallMillis: 2000, Counter: 0, NodeID: "a"},
		{WallMillis: 1000, Counter: 5, NodeID: "b"},
		{WallMillis: 1000, Counter: 5, NodeID: "a"},
		{WallMillis: 1000, Counter: 50, NodeID: "a"},
		{WallMillis: 500, Counter: 99999, NodeID: "z"},
	}

	packed := make([]string, len(values))
	for i, v := range values {
		packed[i] = Pack(v)
	}

	sort.Slice(values, func(i, j int) bool { return Compare(values[i], values[j]) < 0 })
	sort.Strings(packed)

	for i, v := range values {
		assert.Equal(t, Pack(v), packed[i], "string order must match causal order")
	}
}

func TestUnpack_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		packed string
	}{
		{"empty string", ""},
		{"missing fields", "123:456"},
		{"non-numeric millis", "abc:00001:node"},
		{"non-numeric counter", "000000000001000:xyz:node"},
		{"empty node id", "000000000001000:00001:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unpack(tt.packed)
			assert.Error(t, err)
		})
	}
}

func TestMustUnpack_PanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() {
		MustUnpack("not-a-clock")
	})
}

func TestMustUnpack_Valid(t *testing.T) {
	v := Value{WallMillis: 1000, Counter: 3, NodeID: "node-a"}
	assert.Equal(t, v, MustUnpack(Pack(v)))
}
