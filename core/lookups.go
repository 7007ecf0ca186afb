package core

import (
	"github.com/agoramind/govscope/schema"
)

// buildAuthoredCounts maps agent logins to the number of proposals they
// authored. Built once per top-level call and threaded into sub-computations
// instead of recomputed ad hoc.
func buildAuthoredCounts(proposals []schema.Proposal) map[string]int {
	counts := make(map[string]int, len(proposals))
	for _, p := range proposals {
		if p.Author == "" {
			continue
		}
		counts[p.Author]++
	}
	return counts
}

// buildProposalComments maps proposal numbers to the comments targeting
// them. Only issue- and proposal-typed comments qualify; PR and review
// comments target a different number space.
func buildProposalComments(comments []schema.Comment) map[int][]schema.Comment {
	byTarget := make(map[int][]schema.Comment)
	for _, c := range comments {
		switch c.Type {
		case schema.CommentProposal, schema.CommentIssue:
			byTarget[c.Number] = append(byTarget[c.Number], c)
		}
	}
	return byTarget
}

// buildOpenPRRefs collects every proposal number referenced by an open pull
// request's title or body.
func buildOpenPRRefs(prs []schema.PullRequest) map[int]struct{} {
	refs := make(map[int]struct{})
	for _, pr := range prs {
		if pr.State != "open" {
			continue
		}
		for n := range ExtractIssueRefs(pr.Title + "\n" + pr.Body) {
			refs[n] = struct{}{}
		}
	}
	return refs
}
