package outfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		format []int
		want   Result
	}{
		{
			name:   "hash and plain",
			line:   "8743b52063cd84097a65d1633f5c74f5:hashcat",
			format: []int{1, 2},
			want:   Result{Hash: "8743b52063cd84097a65d1633f5c74f5", Plain: "hashcat"},
		},
		{
			name:   "salted hash keeps its separator",
			line:   "e983672a03adcc9767b24584338eb378:00:hashcat",
			format: []int{1, 2},
			want:   Result{Hash: "e983672a03adcc9767b24584338eb378:00", Plain: "hashcat"},
		},
		{
			name:   "hex encoded plain",
			line:   "abc:$HEX[613a62]",
			format: []int{2, 1},
			want:   Result{Hash: "abc", Plain: "a:b"},
		},
		{
			name:   "plain only",
			line:   "hashcat",
			format: []int{2},
			want:   Result{Plain: "hashcat"},
		},
		{
			name:   "hex plain and crack position",
			line:   "abc:68617368636174:42",
			format: []int{1, 3, 4},
			want:   Result{Hash: "abc", Plain: "hashcat", HexPlain: "68617368636174", CrackPos: 42},
		},
		{
			name:   "timestamp",
			line:   "abc:hashcat:1700000000",
			format: []int{1, 2, 5},
			want:   Result{Hash: "abc", Plain: "hashcat", Timestamp: time.Unix(1700000000, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line, tt.format)
			require.NoError(t, err)

			tt.want.Raw = tt.line
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		format  []int
		wantErr error
	}{
		{name: "too few fields", line: "hashonly", format: []int{1, 2}, wantErr: ErrMalformedLine},
		{name: "bad crack position", line: "abc:x", format: []int{1, 4}, wantErr: ErrMalformedLine},
		{name: "bad hex plain", line: "abc:zz", format: []int{1, 3}, wantErr: ErrMalformedLine},
		{name: "unknown field", line: "abc", format: []int{7}, wantErr: ErrInvalidFormat},
		{name: "empty format", line: "abc", format: nil, wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line, tt.format)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.txt.out")
	require.NoError(t, os.WriteFile(path, []byte("aaa:first\n\nnot-a-pair\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu      sync.Mutex
		results []Result
	)

	done := make(chan error, 1)
	go func() {
		done <- Follow(ctx, path, Options{Format: []int{1, 2}, Poll: true}, func(r Result) {
			mu.Lock()
			defer mu.Unlock()
			results = append(results, r)
		})
	}()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("bbb:second\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(results) == 2
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Follow did not return after cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "first", results[0].Plain)
	assert.Equal(t, "bbb", results[1].Hash)
}

func TestFollow_InvalidFormat(t *testing.T) {
	err := Follow(context.Background(), filepath.Join(t.TempDir(), "x"), Options{Format: []int{9}}, func(Result) {})
	require.ErrorIs(t, err, ErrInvalidFormat)
}
