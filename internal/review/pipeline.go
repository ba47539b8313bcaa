package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sevigo/pr-warden/internal/core"
)

// errNoTextualDiff means every changed file lacks a patch; it is not a failure.
var errNoTextualDiff = errors.New("no textual diff to summarize")

// Prompts renders the texts sent to the LLM.
type Prompts interface {
	System() (string, error)
	Summary(diff string) (string, error)
	Critique(path, patch string, instructions []string) (string, error)
}

// Options are the tunables of the pipeline.
type Options struct {
	RiskThreshold          int
	AutoApprove            bool
	ValidateAnchors        bool
	SummaryTemperature     float64
	CritiqueTemperature    float64
	MaxConcurrentCritiques int
	FetchTimeout           time.Duration
	LLMTimeout             time.Duration
	HostTimeout            time.Duration
	CustomInstructions     []string
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		RiskThreshold:          DefaultRiskThreshold,
		AutoApprove:            true,
		ValidateAnchors:        true,
		SummaryTemperature:     0.2,
		CritiqueTemperature:    0.2,
		MaxConcurrentCritiques: 4,
		FetchTimeout:           30 * time.Second,
		LLMTimeout:             2 * time.Minute,
		HostTimeout:            30 * time.Second,
	}
}

// Pipeline turns a pull request event into a summary comment and a review.
// It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	hosts   core.HostClientFactory
	llm     core.LLMClient
	prompts Prompts
	opts    Options
	logger  *slog.Logger
}

// NewPipeline wires the pipeline to its collaborators.
func NewPipeline(hosts core.HostClientFactory, llm core.LLMClient, prompts Prompts, opts Options, logger *slog.Logger) *Pipeline {
	if hosts == nil {
		panic("host client factory cannot be nil")
	}
	if llm == nil {
		panic("LLM client cannot be nil")
	}
	if prompts == nil {
		panic("prompts cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if opts.MaxConcurrentCritiques < 1 {
		opts.MaxConcurrentCritiques = 1
	}
	return &Pipeline{hosts: hosts, llm: llm, prompts: prompts, opts: opts, logger: logger}
}

// HandleEvent runs one review cycle. It never returns an error: failures are
// logged and reported through Result, since the webhook caller only learns
// that the delivery was received.
func (p *Pipeline) HandleEvent(ctx context.Context, event *core.ReviewEvent) (res Result) {
	res.enter(StateReceived)

	if event == nil || !core.IsReviewable(event.EventType, event.Action) {
		if event != nil {
			p.logger.Debug("ignoring event", "event", event.EventType, "action", event.Action)
		}
		res.enter(StateAborted)
		return res
	}

	runID := event.DeliveryID
	if runID == "" {
		runID = uuid.NewString()
	}
	log := p.logger.With("run_id", runID, "repo", event.RepoFullName, "pr", event.PRNumber)

	defer func() {
		if r := recover(); r != nil {
			log.Error("review pipeline panicked", "panic", r)
			res.Err = fmt.Errorf("review pipeline panicked: %v", r)
			res.enter(StateAborted)
		}
	}()

	log.Info("starting review", "action", event.Action, "head_sha", event.HeadSHA, "files_url", event.FilesURL)

	host, err := p.hosts.ForInstallation(ctx, event.InstallationID)
	if err != nil {
		return p.abort(log, res, fmt.Errorf("failed to create host client: %w", err))
	}

	files, err := p.fetchFiles(ctx, host, event)
	if err != nil {
		return p.abort(log, res, err)
	}
	res.enter(StateFilesFetched)

	bundle, total := CollectDiff(files)
	res.Files = len(bundle.Entries)
	res.Changes = total
	log.Info("collected diff", "files", len(files), "with_patch", len(bundle.Entries), "changes", total)

	if summary, err := p.summarize(ctx, bundle); errors.Is(err, errNoTextualDiff) {
		log.Info("no textual diff, skipping summary comment", "files", len(files))
	} else if err != nil {
		log.Error("failed to summarize pull request", "error", err)
		res.Err = err
	} else {
		res.enter(StateSummarized)
		if err := p.postSummary(ctx, host, event, summary); err != nil {
			log.Error("failed to post summary comment", "error", err)
			res.Err = err
		} else {
			res.enter(StateCommentPosted)
		}
	}

	res.Tier = ClassifyRisk(total, p.opts.RiskThreshold)
	res.enter(StateRiskAssessed)
	log.Info("risk assessed", "tier", res.Tier.String(), "changes", total, "threshold", p.opts.RiskThreshold)

	var decision *core.ReviewDecision
	if res.Tier == core.RiskLow && p.opts.AutoApprove {
		d := core.ApproveDecision(formatApprovalBody(total, p.opts.RiskThreshold))
		decision = &d
		res.enter(StateApproved)
	} else {
		decision = p.critique(ctx, log, bundle)
		res.enter(StateCritiqued)
	}

	if decision != nil {
		res.Decision = decision
		if err := p.submit(ctx, host, event, *decision); err != nil {
			log.Error("failed to submit review", "decision", decision.Kind.String(), "error", err)
			res.Err = err
		} else {
			log.Info("review submitted", "decision", decision.Kind.String(), "comments", len(decision.Comments))
		}
	} else {
		log.Info("no findings, skipping review submission")
	}

	res.enter(StateDone)
	return res
}

func (p *Pipeline) abort(log *slog.Logger, res Result, err error) Result {
	log.Error("review aborted", "error", err)
	res.Err = err
	res.enter(StateAborted)
	return res
}

func (p *Pipeline) fetchFiles(ctx context.Context, host core.HostClient, event *core.ReviewEvent) ([]core.ChangedFile, error) {
	ctx, cancel := withTimeout(ctx, p.opts.FetchTimeout)
	defer cancel()

	files, err := host.FetchChangedFiles(ctx, event.RepoOwner, event.RepoName, event.PRNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch changed files: %w", hostError(err))
	}
	return files, nil
}

func (p *Pipeline) summarize(ctx context.Context, bundle core.DiffBundle) (string, error) {
	if bundle.Text == "" {
		return "", errNoTextualDiff
	}
	system, err := p.prompts.System()
	if err != nil {
		return "", fmt.Errorf("failed to render system prompt: %w", err)
	}
	prompt, err := p.prompts.Summary(bundle.Text)
	if err != nil {
		return "", fmt.Errorf("failed to render summary prompt: %w", err)
	}

	ctx, cancel := withTimeout(ctx, p.opts.LLMTimeout)
	defer cancel()

	summary, err := p.llm.Complete(ctx, system, prompt, p.opts.SummaryTemperature)
	if err != nil {
		return "", llmError(err)
	}
	return summary, nil
}

func (p *Pipeline) postSummary(ctx context.Context, host core.HostClient, event *core.ReviewEvent, summary string) error {
	ctx, cancel := withTimeout(ctx, p.opts.HostTimeout)
	defer cancel()

	if err := host.PostIssueComment(ctx, event.RepoOwner, event.RepoName, event.PRNumber, formatSummaryComment(summary)); err != nil {
		return hostError(err)
	}
	return nil
}

func (p *Pipeline) submit(ctx context.Context, host core.HostClient, event *core.ReviewEvent, decision core.ReviewDecision) error {
	ctx, cancel := withTimeout(ctx, p.opts.HostTimeout)
	defer cancel()

	if err := host.SubmitReview(ctx, event.RepoOwner, event.RepoName, event.PRNumber, event.HeadSHA, decision); err != nil {
		return hostError(err)
	}
	return nil
}

// critique asks for findings on every bundled file and builds the decision.
// A nil decision means there is nothing to submit.
func (p *Pipeline) critique(ctx context.Context, log *slog.Logger, bundle core.DiffBundle) *core.ReviewDecision {
	comments := p.critiqueFiles(ctx, log, bundle.Entries)

	inline, offDiff := comments, []core.InlineComment(nil)
	if p.opts.ValidateAnchors {
		inline, offDiff = SplitByAnchor(log, comments, bundle)
	}
	log.Info("critique finished", "comments", len(comments), "inline", len(inline), "off_diff", len(offDiff))

	switch {
	case len(inline) > 0:
		d := core.InlineDecision(inline, formatCritiqueBody(offDiff))
		return &d
	case len(offDiff) > 0:
		d := core.NoteDecision(formatCritiqueBody(offDiff))
		return &d
	default:
		return nil
	}
}

// critiqueFiles runs one critique per file with bounded concurrency. A failed
// file contributes no comments. The result is sorted by path and line.
func (p *Pipeline) critiqueFiles(ctx context.Context, log *slog.Logger, entries []core.DiffEntry) []core.InlineComment {
	system, err := p.prompts.System()
	if err != nil {
		log.Error("failed to render system prompt", "error", err)
		return nil
	}

	perFile := make([][]core.InlineComment, len(entries))

	var g errgroup.Group
	g.SetLimit(p.opts.MaxConcurrentCritiques)
	for i, entry := range entries {
		g.Go(func() error {
			comments, err := p.critiqueFile(ctx, system, entry)
			if err != nil {
				log.Warn("file critique failed", "file", entry.Path, "error", err)
				return nil
			}
			log.Debug("file critiqued", "file", entry.Path, "comments", len(comments))
			perFile[i] = comments
			return nil
		})
	}
	_ = g.Wait()

	var all []core.InlineComment
	for _, c := range perFile {
		all = append(all, c...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Path != all[j].Path {
			return all[i].Path < all[j].Path
		}
		return all[i].Line < all[j].Line
	})
	return all
}

func (p *Pipeline) critiqueFile(ctx context.Context, system string, entry core.DiffEntry) ([]core.InlineComment, error) {
	prompt, err := p.prompts.Critique(entry.Path, entry.Patch, p.opts.CustomInstructions)
	if err != nil {
		return nil, fmt.Errorf("failed to render critique prompt: %w", err)
	}

	ctx, cancel := withTimeout(ctx, p.opts.LLMTimeout)
	defer cancel()

	text, err := p.llm.Complete(ctx, system, prompt, p.opts.CritiqueTemperature)
	if err != nil {
		return nil, llmError(err)
	}
	return ParseCritique(entry.Path, text), nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// hostError and llmError make sure collaborator failures carry their sentinel,
// whichever adapter produced them.
func hostError(err error) error {
	if errors.Is(err, core.ErrHostUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", core.ErrHostUnavailable, err)
}

func llmError(err error) error {
	if errors.Is(err, core.ErrLLMUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", core.ErrLLMUnavailable, err)
}
