package remote

import (
	"context"
	"sync"

	"github.com/yojoots/colorjournal/internal/export"
)

// Pusher sends colored batches to the spreadsheet backend. Writes to
// the same spreadsheet are serialized; two overlapping exports would
// otherwise interleave their resize/update pairs and leave the sheet
// in whichever order the backend happened to apply.
type Pusher struct {
	client Sheets

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPusher(client Sheets) *Pusher {
	return &Pusher{client: client, locks: map[string]*sync.Mutex{}}
}

func (p *Pusher) lockFor(spreadsheetID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[spreadsheetID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[spreadsheetID] = l
	}
	return l
}

// Push shapes the batch into requests and sends them in order:
// resize, column widths, batch update. The first failure aborts the
// rest and is returned unwrapped for Classify.
func (p *Pusher) Push(ctx context.Context, spreadsheetID string, batch export.Batch) error {
	l := p.lockFor(spreadsheetID)
	l.Lock()
	defer l.Unlock()

	reqs := BuildRequests(batch)
	if err := p.client.Resize(ctx, spreadsheetID, reqs.Resize); err != nil {
		return err
	}
	if err := p.client.SetColumnWidths(ctx, spreadsheetID, reqs.Widths); err != nil {
		return err
	}
	return p.client.BatchUpdate(ctx, spreadsheetID, reqs.Update)
}
