package mcapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

func TestSubscriberHash(t *testing.T) {
	t.Parallel()

	hash := mcapi.SubscriberHash("Urist.McVankab@FreddiesJokes.com")
	assert.Equal(t, "62eeb292278cc15f5817cb78f7790b08", hash)
	assert.Equal(t, hash, mcapi.SubscriberHash("urist.mcvankab@freddiesjokes.com"))
}

func TestMemberID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "62eeb292278cc15f5817cb78f7790b08", mcapi.MemberID("urist.mcvankab@freddiesjokes.com"))
	assert.Equal(t, "62eeb292278cc15f5817cb78f7790b08", mcapi.MemberID("62eeb292278cc15f5817cb78f7790b08"))
	assert.Equal(t, "abc", mcapi.MemberID("abc"))
}
