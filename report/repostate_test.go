package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepoStateSectionEmpty(t *testing.T) {
	text, present := RepoStateSection(RepoState{}, Plain)
	require.Empty(t, text)
	require.False(t, present)
}

func TestRepoStateSectionConflicts(t *testing.T) {
	text, present := RepoStateSection(RepoState{Merging: true, HasConflicts: true}, Plain)
	require.True(t, present)
	require.Equal(t, "You have unmerged paths.\n"+
		"  (fix conflicts and run \"git commit\")\n"+
		"  (use \"git merge --abort\" to abort the merge)\n"+
		"\n", text)
}

func TestRepoStateSectionConflictsFixed(t *testing.T) {
	text, present := RepoStateSection(RepoState{Merging: true}, Plain)
	require.True(t, present)
	require.Equal(t, "All conflicts fixed but you are still merging.\n"+
		"  (use \"git commit\" to conclude merge)\n"+
		"\n", text)
}
