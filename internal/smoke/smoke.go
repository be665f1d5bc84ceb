package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Runner walks a live server through the whole pairing flow.
type Runner struct {
	client  *http.Client
	apiURL  string
	out     io.Writer
	partner [2]string
}

type Report struct {
	Run      int
	Passed   int
	Failures []string
}

func (r Report) OK() bool {
	return r.Run > 0 && r.Passed == r.Run
}

func New(client *http.Client, baseURL string, out io.Writer) *Runner {
	return &Runner{
		client:  client,
		apiURL:  strings.TrimRight(baseURL, "/") + "/api",
		out:     out,
		partner: [2]string{"TestUser1", "TestUser2"},
	}
}

// WaitReady polls the root endpoint until it answers or attempts run out.
func (r *Runner) WaitReady(ctx context.Context, attempts int, pause time.Duration) bool {
	fmt.Fprintln(r.out, " Waiting for service to be ready...")

	for i := 0; i < attempts; i++ {
		if status, err := r.do(ctx, http.MethodGet, "/", nil, nil); err == nil && status == http.StatusOK {
			fmt.Fprintln(r.out, " Service is ready!")
			return true
		}
		if i < attempts-1 {
			fmt.Fprintf(r.out, " Service not ready yet (attempt %d/%d)...\n", i+1, attempts)
			select {
			case <-ctx.Done():
				return false
			case <-time.After(pause):
			}
		}
	}

	fmt.Fprintln(r.out, " Service didn't start in time")
	return false
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

func (r *Runner) Run(ctx context.Context) Report {
	var (
		report   Report
		roomCode string
	)

	steps := []step{
		{"Root API", func(ctx context.Context) error {
			var body struct {
				Message string `json:"message"`
			}
			if err := r.expect(ctx, http.MethodGet, "/", nil, http.StatusOK, &body); err != nil {
				return err
			}
			if body.Message == "" {
				return fmt.Errorf("empty banner")
			}
			return nil
		}},
		{"Create Room", func(ctx context.Context) error {
			var body struct {
				Code string `json:"code"`
			}
			err := r.expect(ctx, http.MethodPost, "/rooms/create",
				map[string]string{"partner_name": r.partner[0]}, http.StatusOK, &body)
			if err != nil {
				return err
			}
			if len(body.Code) != 6 {
				return fmt.Errorf("unexpected room code %q", body.Code)
			}
			roomCode = body.Code
			fmt.Fprintf(r.out, "Room created with code: %s\n", roomCode)
			return nil
		}},
		{"Get Room", func(ctx context.Context) error {
			return r.expectRoom(ctx, roomCode, r.partner[0], "")
		}},
		{"Join Room", func(ctx context.Context) error {
			return r.expect(ctx, http.MethodPost, "/rooms/join",
				map[string]string{"code": roomCode, "partner_name": r.partner[1]}, http.StatusOK, nil)
		}},
		{"Get Room After Join", func(ctx context.Context) error {
			return r.expectRoom(ctx, roomCode, r.partner[0], r.partner[1])
		}},
		{"Join Full Room", func(ctx context.Context) error {
			return r.expect(ctx, http.MethodPost, "/rooms/join",
				map[string]string{"code": roomCode, "partner_name": "TestUser3"}, http.StatusBadRequest, nil)
		}},
		{"Send Flower", func(ctx context.Context) error {
			return r.expect(ctx, http.MethodPost, "/flowers/send", map[string]string{
				"room_code": roomCode, "sender": r.partner[0], "flower_type": "rose", "message": "For you",
			}, http.StatusOK, nil)
		}},
		{"Get Flowers", func(ctx context.Context) error {
			return r.expectList(ctx, "/flowers/"+roomCode)
		}},
		{"Send Message", func(ctx context.Context) error {
			return r.expect(ctx, http.MethodPost, "/messages/send", map[string]string{
				"room_code": roomCode, "sender": r.partner[1], "content": "Missing you",
			}, http.StatusOK, nil)
		}},
		{"Get Messages", func(ctx context.Context) error {
			return r.expectList(ctx, "/messages/"+roomCode)
		}},
		{"Set Countdown", func(ctx context.Context) error {
			return r.expect(ctx, http.MethodPost, "/countdown/set", map[string]string{
				"room_code":   roomCode,
				"event_name":  "Next visit",
				"target_date": time.Now().AddDate(0, 0, 30).Format(time.RFC3339),
			}, http.StatusOK, nil)
		}},
		{"Get Countdown", func(ctx context.Context) error {
			var body struct {
				EventName string `json:"event_name"`
			}
			if err := r.expect(ctx, http.MethodGet, "/countdown/"+roomCode, nil, http.StatusOK, &body); err != nil {
				return err
			}
			if body.EventName != "Next visit" {
				return fmt.Errorf("unexpected event %q", body.EventName)
			}
			return nil
		}},
		{"Update Bucket List", func(ctx context.Context) error {
			return r.expect(ctx, http.MethodPost, "/bucketlist/update", map[string]any{
				"room_code": roomCode,
				"items": []map[string]any{
					{"text": "Visit Paris together", "completed": false},
					{"text": "Watch sunset on beach", "completed": true},
				},
			}, http.StatusOK, nil)
		}},
		{"Get Bucket List", func(ctx context.Context) error {
			var body struct {
				Items []json.RawMessage `json:"items"`
			}
			if err := r.expect(ctx, http.MethodGet, "/bucketlist/"+roomCode, nil, http.StatusOK, &body); err != nil {
				return err
			}
			if len(body.Items) != 2 {
				return fmt.Errorf("expected 2 items, got %d", len(body.Items))
			}
			return nil
		}},
		{"Send Hug", func(ctx context.Context) error {
			return r.expect(ctx, http.MethodPost, "/hugs/send", map[string]string{
				"room_code": roomCode, "sender": r.partner[1], "hug_type": "warm",
			}, http.StatusOK, nil)
		}},
		{"Get Hugs", func(ctx context.Context) error {
			return r.expectList(ctx, "/hugs/"+roomCode)
		}},
		{"Send Valentine Card", func(ctx context.Context) error {
			return r.expect(ctx, http.MethodPost, "/valentine/send", map[string]string{
				"room_code": roomCode, "sender": r.partner[0], "card_type": "romantic", "message": "Be mine",
			}, http.StatusOK, nil)
		}},
		{"Get Valentine Cards", func(ctx context.Context) error {
			return r.expectList(ctx, "/valentine/"+roomCode)
		}},
	}

	for _, s := range steps {
		report.Run++
		fmt.Fprintf(r.out, "\n Testing %s...\n", s.name)

		if err := s.run(ctx); err != nil {
			fmt.Fprintf(r.out, " Failed - %v\n", err)
			report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", s.name, err))
			continue
		}
		report.Passed++
		fmt.Fprintln(r.out, " Passed")
	}

	fmt.Fprintf(r.out, "\n Tests passed: %d/%d\n", report.Passed, report.Run)
	return report
}

func (r *Runner) expectRoom(ctx context.Context, code, partner1, partner2 string) error {
	var body struct {
		Partner1Name string  `json:"partner1_name"`
		Partner2Name *string `json:"partner2_name"`
	}
	if err := r.expect(ctx, http.MethodGet, "/rooms/"+code, nil, http.StatusOK, &body); err != nil {
		return err
	}
	if body.Partner1Name != partner1 {
		return fmt.Errorf("partner1_name = %q, want %q", body.Partner1Name, partner1)
	}
	got := ""
	if body.Partner2Name != nil {
		got = *body.Partner2Name
	}
	if got != partner2 {
		return fmt.Errorf("partner2_name = %q, want %q", got, partner2)
	}
	return nil
}

func (r *Runner) expectList(ctx context.Context, path string) error {
	var items []json.RawMessage
	if err := r.expect(ctx, http.MethodGet, path, nil, http.StatusOK, &items); err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("empty list at %s", path)
	}
	return nil
}

func (r *Runner) expect(ctx context.Context, method, path string, in any, status int, out any) error {
	got, err := r.do(ctx, method, path, in, out)
	if err != nil {
		return err
	}
	if got != status {
		return fmt.Errorf("expected %d, got %d", status, got)
	}
	return nil
}

func (r *Runner) do(ctx context.Context, method, path string, in any, out any) (int, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.apiURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if out != nil && resp.StatusCode < 300 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to parse response %s: %w", string(raw), err)
		}
	}
	return resp.StatusCode, nil
}
