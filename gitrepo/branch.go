/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/pkg/errors"

	"github.com/untillpro/gitstatus/report"
)

const shortHashLen = 7

// branchInfo resolves HEAD, the configured upstream and the ahead/behind
// counts. A branch without a branch.<name> config section has no upstream;
// a configured upstream whose remote-tracking ref is missing is reported
// as gone.
func (r *Repo) branchInfo() (report.BranchInfo, error) {
	head, err := r.repo.Head()
	if err != nil {
		return report.BranchInfo{}, errors.Wrap(err, "HEAD is not resolvable")
	}
	if !head.Name().IsBranch() {
		return report.BranchInfo{DetachedShort: head.Hash().String()[:shortHashLen]}, nil
	}

	info := report.BranchInfo{Name: head.Name().Short()}
	cfg, err := r.repo.Config()
	if err != nil {
		return report.BranchInfo{}, errors.Wrap(err, "config read failed")
	}
	branchCfg, ok := cfg.Branches[info.Name]
	if !ok || branchCfg.Remote == "" {
		return info, nil
	}

	info.Upstream = branchCfg.Remote + "/" + branchCfg.Merge.Short()
	upstream, err := r.repo.Reference(plumbing.NewRemoteReferenceName(branchCfg.Remote, branchCfg.Merge.Short()), true)
	if err != nil {
		info.UpstreamGone = true

		return info, nil
	}

	info.Ahead, info.Behind, err = r.aheadBehind(head.Hash(), upstream.Hash())
	if err != nil {
		return report.BranchInfo{}, err
	}

	return info, nil
}

// aheadBehind counts the commits reachable from exactly one of the two
// heads. Full reachable sets keep the count exact across merge commits.
func (r *Repo) aheadBehind(local, remote plumbing.Hash) (int, int, error) {
	if local == remote {
		return 0, 0, nil
	}
	localSet, err := r.reachable(local)
	if err != nil {
		return 0, 0, err
	}
	remoteSet, err := r.reachable(remote)
	if err != nil {
		return 0, 0, err
	}

	return exclusiveCount(localSet, remoteSet), exclusiveCount(remoteSet, localSet), nil
}

func (r *Repo) reachable(from plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	seen := make(map[plumbing.Hash]struct{})
	queue := []plumbing.Hash{from}
	for len(queue) > 0 {
		h := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}

		commit, err := r.repo.CommitObject(h)
		if err != nil {
			return nil, errors.Wrapf(err, "commit %s is not readable", h)
		}
		queue = append(queue, commit.ParentHashes...)
	}

	return seen, nil
}

func exclusiveCount(of, notIn map[plumbing.Hash]struct{}) int {
	count := 0
	for h := range of {
		if _, ok := notIn[h]; !ok {
			count++
		}
	}

	return count
}
