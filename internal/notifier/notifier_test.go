package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	ps "github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/wellhub/internal/constants"
)

type fakeProcess struct {
	pid int
	exe string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return p.exe }

// stubProcesses makes every PID resolve to exe, or to nothing when exe is empty.
func stubProcesses(t *testing.T, exe string) {
	t.Helper()
	orig := findProcessFunc
	t.Cleanup(func() { findProcessFunc = orig })
	findProcessFunc = func(pid int) (ps.Process, error) {
		if exe == "" {
			return nil, nil
		}
		return fakeProcess{pid: pid, exe: exe}, nil
	}
}

func writeLockfile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, constants.NotifierLockfileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// trayServer records the payload of every accepted request.
func trayServer(t *testing.T, secret string) (port string, got *[]WebhookPayload) {
	t.Helper()
	var payloads []WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("X-Wellhub-Secret") != secret {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var p WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if p.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		payloads = append(payloads, p)
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return u.Port(), &payloads
}

func TestGetTrayAppConfigDir(t *testing.T) {
	home := t.TempDir()
	orig := userConfigDirFunc
	t.Cleanup(func() { userConfigDirFunc = orig })
	userConfigDirFunc = func() (string, error) { return home, nil }

	trayDir := filepath.Join(home, constants.TrayAppIdentifier)
	dir, err := GetTrayAppConfigDir()
	require.NoError(t, err)
	assert.Equal(t, trayDir, dir)

	require.NoError(t, os.MkdirAll(trayDir, 0755))
	settings := `{"settings": {"lockfile_dir": "/var/run/wellhub"}}`
	require.NoError(t, os.WriteFile(filepath.Join(trayDir, "settings.json"), []byte(settings), 0644))

	dir, err = GetTrayAppConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/var/run/wellhub", dir)
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	tests := []struct {
		name    string
		lock    string
		exe     string
		wantErr string
	}{
		{name: "two fields", lock: "8080|12345", exe: "wellhub-tray", wantErr: "malformed"},
		{name: "garbage", lock: "invalid", exe: "wellhub-tray", wantErr: "malformed"},
		{name: "empty secret", lock: "8080|12345|", exe: "wellhub-tray", wantErr: "secret"},
		{name: "empty port", lock: "|12345|s3cret", exe: "wellhub-tray", wantErr: "port"},
		{name: "port out of range", lock: "99999|12345|s3cret", exe: "wellhub-tray", wantErr: "range"},
		{name: "bad pid", lock: "8080|abc|s3cret", exe: "wellhub-tray", wantErr: "process ID"},
		{name: "process gone", lock: "8080|12345|s3cret", exe: "", wantErr: ErrTrayNotRunning.Error()},
		{name: "someone else's pid", lock: "8080|12345|s3cret", exe: "postgres", wantErr: "is not"},
		{name: "ok", lock: " 8080|12345|s3cret \n", exe: "wellhub-tray"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubProcesses(t, tt.exe)
			path := writeLockfile(t, t.TempDir(), tt.lock)

			port, secret, err := findAndValidateTrayProcess(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "8080", port)
			assert.Equal(t, "s3cret", secret)
		})
	}

	t.Run("missing lockfile", func(t *testing.T) {
		_, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "absent.lock"))
		assert.ErrorIs(t, err, ErrTrayNotRunning)
	})
}

func TestSendNotification(t *testing.T) {
	port, got := trayServer(t, "s3cret")
	ctx := context.Background()

	require.NoError(t, sendNotification(ctx, http.DefaultClient, port, "s3cret", WebhookPayload{Text: "hello"}))
	require.Len(t, *got, 1)

	err := sendNotification(ctx, http.DefaultClient, port, "", WebhookPayload{Text: "hello"})
	assert.ErrorContains(t, err, "401")
	err = sendNotification(ctx, http.DefaultClient, port, "wrong", WebhookPayload{Text: "hello"})
	assert.ErrorContains(t, err, "unauthorized")
	err = sendNotification(ctx, http.DefaultClient, port, "s3cret", WebhookPayload{Text: "fail"})
	assert.ErrorContains(t, err, "500")
}

func TestTrayNotify(t *testing.T) {
	stubProcesses(t, "wellhub-tray")
	port, got := trayServer(t, "s3cret")

	dir := t.TempDir()
	tray := NewTray(dir)
	assert.ErrorIs(t, tray.Notify(context.Background(), Info("hi")), ErrTrayNotRunning)

	writeLockfile(t, dir, port+"|4242|s3cret")
	toast := NewToast(KindReminder, "Time to drink water!").WithSound(true)
	require.NoError(t, tray.Notify(context.Background(), toast))

	require.Len(t, *got, 1)
	assert.Equal(t, WebhookPayload{
		Text:       "🔔 Time to drink water!",
		Kind:       "reminder",
		DurationMs: 10000,
		Sound:      true,
	}, (*got)[0])
}

func TestNewToast(t *testing.T) {
	tests := []struct {
		kind     Kind
		wantKind Kind
		wantDur  time.Duration
	}{
		{KindSuccess, KindSuccess, 5 * time.Second},
		{KindReminder, KindReminder, 10 * time.Second},
		{Kind("bogus"), KindInfo, 5 * time.Second},
	}
	for _, tt := range tests {
		toast := NewToast(tt.kind, "msg")
		assert.Equal(t, tt.wantKind, toast.Kind, tt.kind)
		assert.Equal(t, tt.wantDur, toast.Duration, tt.kind)
	}
	assert.Equal(t, "ℹ️", Kind("bogus").Icon())
	assert.Equal(t, "⚠️ careful", Warning("careful").Text())
}

func TestConsoleAndMulti(t *testing.T) {
	var buf bytes.Buffer
	rec := &Recorder{}
	failing := Func(func(context.Context, Toast) error { return errors.New("boom") })

	err := Multi{NewConsole(&buf), rec, nil, failing}.Notify(context.Background(), Success("Saved").WithSound(true))
	assert.ErrorContains(t, err, "boom")
	assert.Contains(t, buf.String(), "✅ Saved")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\a\n")), "sound rings the bell")

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "Saved", last.Message)

	assert.NoError(t, BestEffort(failing).Notify(context.Background(), Error("x")))
}
