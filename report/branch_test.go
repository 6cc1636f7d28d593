package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBranchSectionUpToDate(t *testing.T) {
	info := BranchInfo{Name: "master", Upstream: "origin/master"}

	require.Equal(t, "On branch master\n"+
		"Your branch is up to date with 'origin/master'.\n"+
		"\n", BranchSection(info, Plain))
}

func TestBranchSectionLocalOnly(t *testing.T) {
	// git prints no blank line after a branch without an upstream
	info := BranchInfo{Name: "local_branch"}

	require.Equal(t, "On branch local_branch\n", BranchSection(info, Plain))
}

func TestBranchSectionAhead(t *testing.T) {
	tests := []struct {
		name  string
		ahead int
		want  string
	}{
		{
			"singular commit",
			1,
			"On branch master\n" +
				"Your branch is ahead of 'origin/master' by 1 commit.\n" +
				"  (use \"git push\" to publish your local commits)\n" +
				"\n",
		},
		{
			"plural commits",
			4,
			"On branch master\n" +
				"Your branch is ahead of 'origin/master' by 4 commits.\n" +
				"  (use \"git push\" to publish your local commits)\n" +
				"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := BranchInfo{Name: "master", Upstream: "origin/master", Ahead: tt.ahead}
			require.Equal(t, tt.want, BranchSection(info, Plain))
		})
	}
}

func TestBranchSectionBehind(t *testing.T) {
	tests := []struct {
		name   string
		behind int
		want   string
	}{
		{
			"singular commit",
			1,
			"On branch master\n" +
				"Your branch is behind 'origin/master' by 1 commit, and can be fast-forwarded.\n" +
				"  (use \"git pull\" to update your local branch)\n" +
				"\n",
		},
		{
			"plural commits",
			3,
			"On branch master\n" +
				"Your branch is behind 'origin/master' by 3 commits, and can be fast-forwarded.\n" +
				"  (use \"git pull\" to update your local branch)\n" +
				"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := BranchInfo{Name: "master", Upstream: "origin/master", Behind: tt.behind}
			require.Equal(t, tt.want, BranchSection(info, Plain))
		})
	}
}

func TestBranchSectionDiverged(t *testing.T) {
	info := BranchInfo{Name: "master", Upstream: "origin/master", Ahead: 1, Behind: 3}

	// no pluralization in the diverged message, even for count 1
	require.Equal(t, "On branch master\n"+
		"Your branch and 'origin/master' have diverged,\n"+
		"and have 1 and 3 different commits each, respectively.\n"+
		"  (use \"git pull\" to merge the remote branch into yours)\n"+
		"\n", BranchSection(info, Plain))
}

func TestBranchSectionUpstreamGone(t *testing.T) {
	info := BranchInfo{Name: "master", Upstream: "origin/master", UpstreamGone: true}

	require.Equal(t, "On branch master\n"+
		"Your branch is based on 'origin/master', but the upstream is gone.\n"+
		"  (use \"git branch --unset-upstream\" to fixup)\n"+
		"\n", BranchSection(info, Plain))
}

func TestBranchSectionDetached(t *testing.T) {
	info := BranchInfo{DetachedShort: "92b4c41"}

	require.Equal(t, "HEAD detached at 92b4c41\n", BranchSection(info, Plain))
}

func TestBranchSectionDetachedColorized(t *testing.T) {
	info := BranchInfo{DetachedShort: "92b4c41"}

	// color wraps the phrase, not the commit id
	require.Equal(t, "\x1b[31mHEAD detached at\x1b[0m 92b4c41\n", BranchSection(info, Colorize))
}
