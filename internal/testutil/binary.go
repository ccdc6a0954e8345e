package testutil

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// BuildBinary compiles the command at the repository root into a temporary
// directory.
func BuildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "rightclick")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = RepoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// FreeAddr reserves a loopback port and releases it for the binary to bind.
func FreeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	addr := l.Addr().String()
	l.Close()
	return addr
}

// WaitForHTTP polls url until it answers 200 or ctx expires.
func WaitForHTTP(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	logged := false
	for {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for %s: %v", url, ctx.Err())
		case <-time.After(50 * time.Millisecond):
			resp, err := http.Get(url)
			if err != nil {
				if !logged {
					t.Logf("waiting for %s: %v", url, err)
					logged = true
				}
				continue
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
	}
}
