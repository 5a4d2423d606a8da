package billboard_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favorexchange/favor-billboard/pkg/billboard"
	"github.com/favorexchange/favor-billboard/pkg/model"
)

func favorIDs(b *billboard.Billboard) []string {
	ids := []string{}
	for _, favor := range b.Favors() {
		ids = append(ids, favor.ID().Hex())
	}
	return ids
}

func newListSource() *testSource {
	return newTestSource(
		testFavor(idA, idA, idB, addrA, model.NullAddress),
		testFavor(idB, idA, idC, model.NullAddress, addrB),
		testFavor(idC, idB, idC, addrA, addrB),
	)
}

func TestRefreshFollowsListToTail(t *testing.T) {
	source := newListSource()
	b := billboard.NewBillboard(source, nil, nil)

	require.NoError(t, b.Refresh(context.Background()))
	assert.Equal(t, []string{idA.Hex(), idB.Hex(), idC.Hex()}, favorIDs(b))
	assert.Equal(t, 3, source.favorHits, "should stop at the self referencing tail")
}

func TestRefreshEmptyHead(t *testing.T) {
	source := newTestSource()
	b := billboard.NewBillboard(source, nil, nil)
	b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, addrC, model.NullAddress))

	require.NoError(t, b.Refresh(context.Background()))
	assert.Equal(t, 0, b.Len(), "should have emptied the billboard")
	assert.Equal(t, 1, source.favorHits)
}

func TestRefreshZeroHeadIsNotAFailure(t *testing.T) {
	source := newTestSource()
	source.failOn = &idX
	b := billboard.NewBillboard(source, nil, nil)

	require.NoError(t, b.Refresh(context.Background()))
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 1, source.favorHits)
}

func TestRefreshStopsAtEmptyFavor(t *testing.T) {
	source := newTestSource(testFavor(idA, idA, idB, addrA, model.NullAddress))
	b := billboard.NewBillboard(source, nil, nil)

	require.NoError(t, b.Refresh(context.Background()))
	assert.Equal(t, []string{idA.Hex()}, favorIDs(b))
}

func TestRefreshReplacesPreviousContents(t *testing.T) {
	source := newListSource()
	b := billboard.NewBillboard(source, nil, nil)
	b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, addrC, model.NullAddress))

	require.NoError(t, b.Refresh(context.Background()))
	_, found := b.FindByID(idX)
	assert.False(t, found, "should have dropped favors not in the list")
	assert.Equal(t, 3, b.Len())
}

func TestRefreshHopGuard(t *testing.T) {
	// A and B point at each other and never reach a tail
	source := newTestSource(
		testFavor(idA, idB, idB, addrA, model.NullAddress),
		testFavor(idB, idA, idA, addrB, model.NullAddress),
	)
	b := billboard.NewBillboard(source, nil, &billboard.Config{MaxHops: 10})
	b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, addrC, model.NullAddress))

	err := b.Refresh(context.Background())
	assert.Equal(t, billboard.ErrListTooLong, errors.Cause(err))
	assert.Equal(t, 10, source.favorHits)
	assert.Equal(t, []string{idX.Hex()}, favorIDs(b), "should have kept the previous contents")
}

func TestRefreshFailureKeepsPreviousContents(t *testing.T) {
	source := newListSource()
	b := billboard.NewBillboard(source, nil, nil)
	require.NoError(t, b.Refresh(context.Background()))

	source.failOn = &idC
	err := b.Refresh(context.Background())
	assert.Equal(t, errNodeDown, errors.Cause(err))
	assert.Equal(t, 3, b.Len())

	source.failOn = nil
	source.failHead = true
	err = b.Refresh(context.Background())
	assert.Equal(t, errNodeDown, errors.Cause(err))
	assert.Equal(t, 3, b.Len())
}

func TestRefreshCancelledContext(t *testing.T) {
	b := billboard.NewBillboard(newListSource(), nil, &billboard.Config{CallsPerSec: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, b.Refresh(ctx))
	assert.Equal(t, 0, b.Len())
}

func TestRefreshResolvesNames(t *testing.T) {
	users := newTestUsers()
	b := billboard.NewBillboard(newListSource(), billboard.NewNameResolver(users, 0), nil)
	require.NoError(t, b.Refresh(context.Background()))

	favor, found := b.FindByID(idC)
	require.True(t, found)
	assert.Equal(t, "alice", favor.ClientName())
	assert.Equal(t, "bob", favor.ProviderName())

	favor, _ = b.FindByID(idA)
	assert.Equal(t, "alice", favor.ClientName())
	assert.Equal(t, "", favor.ProviderName())
	assert.Equal(t, 2, users.hits, "should have cached resolved names")
}

func TestApplyCreated(t *testing.T) {
	b := billboard.NewBillboard(newListSource(), billboard.NewNameResolver(newTestUsers(), 0), nil)
	require.NoError(t, b.Refresh(context.Background()))

	b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, addrB, model.NullAddress))
	assert.Equal(t, []string{idA.Hex(), idB.Hex(), idC.Hex(), idX.Hex()}, favorIDs(b))
	favor, _ := b.FindByID(idX)
	assert.Equal(t, "bob", favor.ClientName())

	b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, addrA, model.NullAddress))
	assert.Equal(t, 4, b.Len(), "should have replaced the duplicate")
	favor, _ = b.FindByID(idX)
	assert.Equal(t, addrA, favor.ClientAddr())
}

func TestApplyMatchedAssignsClientFirst(t *testing.T) {
	b := billboard.NewBillboard(newTestSource(), nil, nil)
	b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, model.NullAddress, model.NullAddress))

	updated := b.ApplyMatched(context.Background(), idX, addrA)
	require.NotNil(t, updated)
	assert.Equal(t, addrA, updated.ClientAddr())
	assert.Equal(t, model.NullAddress, updated.ProviderAddr())

	updated = b.ApplyMatched(context.Background(), idX, addrB)
	require.NotNil(t, updated)
	assert.Equal(t, addrA, updated.ClientAddr(), "should never overwrite the client")
	assert.Equal(t, addrB, updated.ProviderAddr())
}

func TestApplyMatchedOffer(t *testing.T) {
	b := billboard.NewBillboard(newTestSource(), billboard.NewNameResolver(newTestUsers(), 0), nil)
	b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, model.NullAddress, addrB))

	updated := b.ApplyMatched(context.Background(), idX, addrA)
	require.NotNil(t, updated)
	assert.Equal(t, addrA, updated.ClientAddr())
	assert.Equal(t, addrB, updated.ProviderAddr())
	assert.Equal(t, "alice", updated.ClientName())
	assert.Equal(t, "bob", updated.ProviderName())
}

func TestApplyMatchedDuplicate(t *testing.T) {
	b := billboard.NewBillboard(newTestSource(), nil, nil)
	b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, addrA, model.NullAddress))

	assert.Nil(t, b.ApplyMatched(context.Background(), idX, addrA))
	favor, _ := b.FindByID(idX)
	assert.Equal(t, model.NullAddress, favor.ProviderAddr())
}

func TestApplyMatchedDoesNotMutatePreviousRecord(t *testing.T) {
	b := billboard.NewBillboard(newTestSource(), nil, nil)
	b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, addrA, model.NullAddress))
	before, _ := b.FindByID(idX)

	b.ApplyMatched(context.Background(), idX, addrB)
	assert.Equal(t, model.NullAddress, before.ProviderAddr())
	after, _ := b.FindByID(idX)
	assert.Equal(t, addrB, after.ProviderAddr())
}

func TestApplyVote(t *testing.T) {
	b := billboard.NewBillboard(newTestSource(), nil, nil)
	b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, addrA, addrB))

	updated := b.ApplyVote(idX, addrB, model.VoteKindCancel)
	require.NotNil(t, updated)
	assert.True(t, updated.ProviderVoteCancel())
	assert.False(t, updated.ClientVoteCancel())

	updated = b.ApplyVote(idX, addrA, model.VoteKindDone)
	require.NotNil(t, updated)
	assert.True(t, updated.ClientVoteDone())
	assert.False(t, updated.ProviderVoteDone())

	assert.Nil(t, b.ApplyVote(idX, addrA, model.VoteKindInvalid))
}

func TestBothCancelEitherOrder(t *testing.T) {
	orders := [][2]bool{{true, false}, {false, true}}
	for _, order := range orders {
		b := billboard.NewBillboard(newTestSource(), nil, nil)
		b.ApplyCreated(context.Background(), testFavor(idX, idX, idX, addrA, addrB))
		for _, client := range order {
			actor := addrB
			if client {
				actor = addrA
			}
			b.ApplyVote(idX, actor, model.VoteKindCancel)
		}
		favor, _ := b.FindByID(idX)
		assert.Equal(t, model.FavorStateBothVotedCancel, model.ProjectState(favor))
	}
}

func TestApplyFinalized(t *testing.T) {
	b := billboard.NewBillboard(newListSource(), nil, nil)
	require.NoError(t, b.Refresh(context.Background()))

	removed := b.ApplyFinalized(idB)
	require.NotNil(t, removed)
	assert.Equal(t, idB, removed.ID())
	assert.Equal(t, []string{idA.Hex(), idC.Hex()}, favorIDs(b))
	assert.Nil(t, b.ApplyFinalized(idB))
}

func TestUnknownIDIsNoop(t *testing.T) {
	b := billboard.NewBillboard(newListSource(), nil, nil)
	require.NoError(t, b.Refresh(context.Background()))

	assert.Nil(t, b.ApplyMatched(context.Background(), idX, addrC))
	assert.Nil(t, b.ApplyVote(idX, addrC, model.VoteKindDone))
	assert.Nil(t, b.ApplyFinalized(idX))
	_, found := b.FindByID(idX)
	assert.False(t, found)
	assert.Equal(t, 3, b.Len())
}

func TestFavorsReturnsCopyOfOrder(t *testing.T) {
	b := billboard.NewBillboard(newListSource(), nil, nil)
	require.NoError(t, b.Refresh(context.Background()))

	favors := b.Favors()
	favors[0] = nil
	assert.Equal(t, []string{idA.Hex(), idB.Hex(), idC.Hex()}, favorIDs(b))
}

func TestFullFavorLifecycle(t *testing.T) {
	ctx := context.Background()
	b := billboard.NewBillboard(newTestSource(), nil, nil)

	b.ApplyCreated(ctx, testFavor(idX, idX, idX, model.NullAddress, model.NullAddress))
	favor, _ := b.FindByID(idX)
	display := model.Project(favor, addrA)
	assert.Equal(t, model.FavorStateUnmatched, display.State)
	assert.Equal(t, model.InvolvementNotInvolved, display.Involvement)
	assert.True(t, display.HasControl(model.ControlAccept))

	b.ApplyMatched(ctx, idX, addrA)
	favor, _ = b.FindByID(idX)
	assert.Equal(t, addrA, favor.ClientAddr())
	assert.Equal(t, model.FavorStateUnmatched, model.ProjectState(favor))

	b.ApplyMatched(ctx, idX, addrB)
	favor, _ = b.FindByID(idX)
	assert.Equal(t, addrB, favor.ProviderAddr())
	assert.Equal(t, model.FavorStateMatched, model.ProjectState(favor))
	assert.Equal(t, model.InvolvementNotInvolved, model.Project(favor, addrC).Involvement)

	b.ApplyVote(idX, addrA, model.VoteKindDone)
	favor, _ = b.FindByID(idX)
	assert.Equal(t, model.FavorStateOneVotedDone, model.ProjectState(favor))

	b.ApplyVote(idX, addrB, model.VoteKindDone)
	favor, _ = b.FindByID(idX)
	display = model.Project(favor, addrA)
	assert.Equal(t, model.FavorStateBothVotedDone, display.State)
	assert.True(t, display.Removed)

	b.ApplyFinalized(idX)
	_, found := b.FindByID(idX)
	assert.False(t, found)
	assert.Equal(t, 0, b.Len())
}
