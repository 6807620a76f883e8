package assemblyai

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kbukum/assemblyai-go/logger"
	"github.com/kbukum/assemblyai-go/provider"
	"github.com/kbukum/assemblyai-go/util"
	"github.com/kbukum/assemblyai-go/validation"
)

// createdOnLayout is the ISO-8601 date format of the created_on filter.
const createdOnLayout = "2006-01-02"

// ListParams filters the list-transcripts call. Nil fields are not sent.
type ListParams struct {
	Limit         *int              `json:"limit" validate:"omitempty,min=1,max=200"`
	Status        *TranscriptStatus `json:"status" validate:"omitempty,enum"`
	CreatedOn     *time.Time        `json:"created_on"`
	BeforeID      *string           `json:"before_id"`
	AfterID       *string           `json:"after_id"`
	ThrottledOnly *bool             `json:"throttled_only"`

	// FirstPageOnly stops after the first page. Nil means true: by default
	// All returns only page 1 even when more pages exist.
	FirstPageOnly *bool `json:"-"`
}

// Query encodes the set filters as URL query parameters.
func (p ListParams) Query() map[string]string {
	q := make(map[string]string)
	if p.Limit != nil {
		q["limit"] = strconv.Itoa(*p.Limit)
	}
	if p.Status != nil {
		q["status"] = p.Status.String()
	}
	if p.CreatedOn != nil {
		q["created_on"] = p.CreatedOn.Format(createdOnLayout)
	}
	if p.BeforeID != nil {
		q["before_id"] = *p.BeforeID
	}
	if p.AfterID != nil {
		q["after_id"] = *p.AfterID
	}
	if p.ThrottledOnly != nil {
		q["throttled_only"] = strconv.FormatBool(*p.ThrottledOnly)
	}
	return q
}

// All lists transcripts in server order.
//
// Unless params.FirstPageOnly is explicitly false, only the first page is
// returned, whether or not the server reports further pages. With
// FirstPageOnly set to false every page is fetched by following
// page_details.next_url until it is absent or equal to current_url.
func (e *TranscriptEndpoint) All(ctx context.Context, params ListParams) ([]Transcript, error) {
	pages, err := e.Pages(ctx, params)
	if err != nil {
		return nil, err
	}
	defer func() { _ = pages.Close() }()

	if util.DerefOr(params.FirstPageOnly, true) {
		first, _, err := pages.Next(ctx)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = []Transcript{}
		}
		return first, nil
	}

	all, err := provider.Collect[[]Transcript](ctx, pages)
	if err != nil {
		return nil, err
	}
	out := []Transcript{}
	for _, page := range all {
		out = append(out, page...)
	}
	return out, nil
}

// Pages returns an iterator over every page of transcripts. It ignores
// params.FirstPageOnly. The iterator is sequential and single pass.
func (e *TranscriptEndpoint) Pages(ctx context.Context, params ListParams) (provider.Iterator[[]Transcript], error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	return &pageIterator{
		client: e.client,
		query:  params.Query(),
	}, nil
}

// pageIterator walks the list endpoint one page per Next call.
type pageIterator struct {
	client  *Client
	query   map[string]string
	page    int
	nextURL string
	done    bool
}

func (it *pageIterator) Next(ctx context.Context) ([]Transcript, bool, error) {
	if it.done {
		return nil, false, nil
	}

	path := transcriptPath
	var opts []RequestOption
	if it.page == 0 {
		opts = append(opts, WithQuery(it.query))
	} else {
		p, err := it.client.PathFromFullURL(it.nextURL)
		if err != nil {
			it.done = true
			return nil, false, fmt.Errorf("list transcripts page %d: %w", it.page+1, err)
		}
		path = p
	}

	list, err := call[TranscriptList](ctx, it.client, path, http.MethodGet, opts...)
	if err != nil {
		it.done = true
		return nil, false, fmt.Errorf("list transcripts page %d: %w", it.page+1, err)
	}
	it.page++

	transcripts := list.Transcripts
	if transcripts == nil {
		transcripts = []Transcript{}
	}

	next := util.Deref(list.PageDetails.NextURL)
	current := util.Deref(list.PageDetails.CurrentURL)
	if next == "" || next == current {
		it.done = true
	}
	it.nextURL = next

	it.client.log.Debug("transcript page fetched", logger.Fields(
		"page", it.page,
		"count", len(transcripts),
		"has_next", !it.done,
	))
	return transcripts, true, nil
}

func (it *pageIterator) Close() error {
	it.done = true
	return nil
}
