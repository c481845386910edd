package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"StockNewsCollector/internal/domain"
	"StockNewsCollector/internal/ports"
)

const (
	defaultAPIBase = "https://api.telegram.org"

	// Strongest pairs shown in the digest; the full graph lives in the
	// snapshot file.
	digestPairLimit = 15

	// Telegram rejects messages over 4096 characters.
	messageLimit = 4096
)

// Notifier posts a per-run collection digest to a Telegram chat.
type Notifier struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier registers bot token and chat identifier.
func NewNotifier(botToken, chatID string) *Notifier {
	return &Notifier{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  defaultAPIBase,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// PublishRunSummary formats the snapshot statistics and the top
// co-mention pairs and sends them as one Markdown message.
func (n *Notifier) PublishRunSummary(ctx context.Context, snapshot domain.Snapshot) error {
	if n.botToken == "" || n.chatID == "" || n.client == nil {
		return fmt.Errorf("telegram notifier misconfigured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", formatRunSummary(snapshot))
	form.Set("parse_mode", "Markdown")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram error: %s", resp.Status)
	}

	return nil
}

// formatRunSummary renders the digest in Korean, matching the audience
// of the collected corpus.
func formatRunSummary(snapshot domain.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "뉴스 수집 완료 %s\n", snapshot.UpdatedKST)
	fmt.Fprintf(&b, "오늘 수집: %d건, 필터링: %d건\n", snapshot.Stats.TodayNew, snapshot.Stats.TodayFiltered)
	fmt.Fprintf(&b, "전체 누적: %d건 (%d개 종목)\n", snapshot.Stats.TotalArticles, snapshot.Stats.TickersWithNews)
	fmt.Fprintf(&b, "co-mention 쌍: %d개\n", snapshot.Stats.CoMentionPairs)

	if len(snapshot.CoMentions) > 0 {
		b.WriteString("\nco-mention TOP:\n")
		top := snapshot.CoMentions
		if len(top) > digestPairLimit {
			top = top[:digestPairLimit]
		}
		for _, cm := range top {
			fmt.Fprintf(&b, "  %s: %d건\n", cm.Pair, cm.Count)
		}
	}

	// Telegram counts characters, not bytes; cut on rune boundaries.
	return domain.TruncateRunes(b.String(), messageLimit)
}
