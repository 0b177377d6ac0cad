package lazy

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPStreamYieldsBodyChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello, streaming world"))
	}))
	defer srv.Close()

	s := NewHTTPStream(srv.URL, nil)

	var chunks []string
	s.Each(func(chunk string, _ int) bool {
		chunks = append(chunks, chunk)
		return true
	})

	got := strings.Join(chunks, "")
	if got != "hello, streaming world" {
		t.Fatalf("expected full body to be reassembled from chunks, got %q", got)
	}
}

func TestHTTPStreamStopsOnVisitorFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fw, ok := w.(http.Flusher)
		w.Write([]byte("first-chunk"))
		if ok {
			fw.Flush()
		}
		w.Write([]byte("second-chunk"))
	}))
	defer srv.Close()

	s := NewHTTPStream(srv.URL, nil)

	count := 0
	s.Each(func(string, int) bool {
		count++
		return false
	})

	if count != 1 {
		t.Fatalf("expected visitor to be invoked exactly once before stopping, got %d", count)
	}
}

func TestHTTPStreamPanicsOnUnreachableHost(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on transport failure")
		}
	}()

	s := NewHTTPStream("http://127.0.0.1:0", nil)
	s.Each(func(string, int) bool { return true })
}
