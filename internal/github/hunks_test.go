package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineSet(lines ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(lines))
	for _, l := range lines {
		set[l] = struct{}{}
	}
	return set
}

func TestCommentableLines(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		want  map[int]struct{}
	}{
		{
			name:  "added file",
			patch: "@@ -0,0 +1,3 @@\n+a\n+b\n+c",
			want:  lineSet(1, 2, 3),
		},
		{
			name:  "removed lines do not advance",
			patch: "@@ -10,3 +10,2 @@\n context\n-gone\n-gone too\n+new",
			want:  lineSet(10, 11),
		},
		{
			name: "multiple hunks",
			patch: "@@ -1,2 +1,2 @@\n a\n-b\n+B\n" +
				"@@ -40,1 +40,2 @@ func x() {\n y\n+z",
			want: lineSet(1, 2, 40, 41),
		},
		{
			name:  "no newline marker",
			patch: "@@ -1 +1 @@\n-old\n\\ No newline at end of file\n+new\n\\ No newline at end of file",
			want:  lineSet(1),
		},
		{
			name:  "header without count",
			patch: "@@ -3 +7 @@\n+x",
			want:  lineSet(7),
		},
		{
			name:  "text before first hunk is ignored",
			patch: "Binary files differ\n+not a line",
			want:  lineSet(),
		},
		{
			name:  "empty patch",
			patch: "",
			want:  lineSet(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommentableLines(tt.patch))
		})
	}
}
