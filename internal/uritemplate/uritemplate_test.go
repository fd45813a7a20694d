package uritemplate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillLeavesTailUnresolved(t *testing.T) {
	base := DocURI.Fill("my-crate", "my_crate")
	assert.Equal(t, Template("https://docs.rs/my-crate/*/my_crate/$TAIL"), base)
}

func TestFillSafeNameBeforeCrateName(t *testing.T) {
	// $CRATESAFE shares a prefix with $CRATE; replacing in the wrong order
	// would leave "my-crateSAFE" behind.
	got := Template("$CRATE/$CRATESAFE").Fill("my-crate", "my_crate")
	assert.Equal(t, Template("my-crate/my_crate"), got)
}

func TestDescendAccumulatesSegmentsInOrder(t *testing.T) {
	base := DocURI.Fill("my-crate", "my_crate")
	uri := base.Descend("foo").Descend("bar").Resolve("baz.html")
	assert.Equal(t, "https://docs.rs/my-crate/*/my_crate/foo/bar/baz.html", uri)
}

func TestResolveLeavesNoPlaceholders(t *testing.T) {
	uri := SrcURI.Fill("my-crate", "my_crate").Descend("lib").Resolve("mod.rs.html")
	assert.False(t, strings.Contains(uri, "$TAIL"))
	assert.False(t, strings.Contains(uri, "$CRATE"))
	assert.Equal(t, "https://docs.rs/crate/my-crate/lib/mod.rs.html", uri)
}

func TestDescendDoesNotMutateParent(t *testing.T) {
	base := DocURI.Fill("my-crate", "my_crate")
	left := base.Descend("left")
	right := base.Descend("right")
	assert.Equal(t, "https://docs.rs/my-crate/*/my_crate/left/a.html", left.Resolve("a.html"))
	assert.Equal(t, "https://docs.rs/my-crate/*/my_crate/right/a.html", right.Resolve("a.html"))
	assert.Equal(t, "https://docs.rs/my-crate/*/my_crate/a.html", base.Resolve("a.html"))
}
