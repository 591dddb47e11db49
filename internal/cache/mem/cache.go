package mem

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"squadmatch/internal/domain"
)

// Cache keeps per-squad leaderboards between writes. Any mutation of a
// squad invalidates its entry; readers fall back to storage on a miss.
type Cache struct {
	mu     sync.RWMutex
	boards map[uuid.UUID][]domain.Membership
}

func New() *Cache {
	return &Cache{
		boards: make(map[uuid.UUID][]domain.Membership),
	}
}

// Update stores the squad's members sorted by rating descending. Equal
// ratings keep membership order, so the board is stable across refreshes.
func (c *Cache) Update(squadID uuid.UUID, members []domain.Membership) {
	board := make([]domain.Membership, len(members))
	copy(board, members)
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Rating > board[j].Rating
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.boards[squadID] = board
}

func (c *Cache) Invalidate(squadID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.boards, squadID)
}

func (c *Cache) Leaderboard(squadID uuid.UUID) ([]domain.Membership, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	board, ok := c.boards[squadID]
	if !ok {
		return nil, false
	}
	out := make([]domain.Membership, len(board))
	copy(out, board)
	return out, true
}
