package attribution

import (
	"context"
	"net/url"
	"time"

	"github.com/leadstack/leadform/internal/utils"
)

// Marks is the tracked attribution parameter set, in payload order.
var Marks = []string{
	"utm_source",
	"utm_medium",
	"utm_content",
	"utm_term",
	"utm_campaign",
	"campaignId",
	"adsetId",
	"adId",
}

const (
	// TierShort is the default attribution window.
	TierShort = time.Hour
	// TierLong applies when the traffic source is a paid affiliate channel.
	TierLong = 30 * 24 * time.Hour
)

// affiliateSources get the long attribution window.
var affiliateSources = map[string]bool{
	"admitad":      true,
	"salesdoubler": true,
}

// Tracker applies the per-visit persistence rules on top of a Store.
type Tracker struct {
	store *Store
}

func NewTracker(store *Store) *Tracker {
	return &Tracker{store: store}
}

// Persist reads every tracked mark from the page query. With no mark present
// the store is left untouched and prior attribution survives. With at least
// one mark present, all marks are rewritten wholesale under the tier chosen
// by the utm_source value.
func (t *Tracker) Persist(ctx context.Context, query url.Values) error {
	present := make(map[string]string)
	for _, mark := range Marks {
		if v := query.Get(mark); v != "" {
			present[mark] = v
		}
	}
	if len(present) == 0 {
		return nil
	}

	tier := Tier(query)
	utils.Log.Debugf("attribution: rewriting %d mark(s) with %s window", len(present), tier)
	return t.store.Replace(ctx, present, time.Now().Add(tier))
}

// Tier returns the attribution window for a visit's query parameters.
func Tier(query url.Values) time.Duration {
	if affiliateSources[query.Get("utm_source")] {
		return TierLong
	}
	return TierShort
}

// Snapshot exposes the live marks for the submission builder.
func (t *Tracker) Snapshot(ctx context.Context) (map[string]string, error) {
	return t.store.Snapshot(ctx)
}
