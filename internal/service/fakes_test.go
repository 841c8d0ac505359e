package service

import (
	"context"
	"sort"
	"time"

	"github.com/ideaboard/ideaboard-go/internal/model"
	"github.com/ideaboard/ideaboard-go/internal/repository"
)

// fakeStore is an in-memory implementation of every store interface,
// returning the same sentinel errors as the SQL repositories.
type fakeStore struct {
	users    map[int64]*model.User
	ideas    map[int64]*model.Idea
	comments map[int64]*model.Comment
	upvotes  map[[2]int64]bool // (ideaID, userID)
	nextID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[int64]*model.User),
		ideas:    make(map[int64]*model.Idea),
		comments: make(map[int64]*model.Comment),
		upvotes:  make(map[[2]int64]bool),
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

// --- UserStore ---

func (f *fakeStore) Create(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	user.ID = f.id()
	user.CreatedAt = time.Now().UTC()
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// --- IdeaStore ---

func (f *fakeStore) Insert(ctx context.Context, idea *model.Idea) error {
	idea.ID = f.id()
	idea.CreatedAt = time.Now().UTC()
	stored := *idea
	f.ideas[idea.ID] = &stored
	return nil
}

func (f *fakeStore) Get(ctx context.Context, id int64) (*model.Idea, error) {
	idea, ok := f.ideas[id]
	if !ok {
		return nil, repository.ErrIdeaNotFound
	}
	clone := *idea
	return &clone, nil
}

func (f *fakeStore) GetResponse(ctx context.Context, id int64, viewerID *int64) (*model.IdeaResponse, error) {
	idea, ok := f.ideas[id]
	if !ok {
		return nil, repository.ErrIdeaNotFound
	}
	return f.composeIdea(idea, viewerID), nil
}

func (f *fakeStore) ListResponses(ctx context.Context, viewerID *int64) ([]model.IdeaResponse, error) {
	ids := make([]int64, 0, len(f.ideas))
	for id := range f.ideas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []model.IdeaResponse{}
	for _, id := range ids {
		out = append(out, *f.composeIdea(f.ideas[id], viewerID))
	}
	return out, nil
}

func (f *fakeStore) Update(ctx context.Context, idea *model.Idea) error {
	stored, ok := f.ideas[idea.ID]
	if !ok {
		return repository.ErrIdeaNotFound
	}
	stored.What = idea.What
	stored.Who = idea.Who
	stored.Features = idea.Features
	stored.DoneCriteria = idea.DoneCriteria
	stored.Inspiration = idea.Inspiration
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.ideas[id]; !ok {
		return repository.ErrIdeaNotFound
	}
	delete(f.ideas, id)
	for pair := range f.upvotes {
		if pair[0] == id {
			delete(f.upvotes, pair)
		}
	}
	for cid, c := range f.comments {
		if c.IdeaID == id {
			delete(f.comments, cid)
		}
	}
	return nil
}

func (f *fakeStore) composeIdea(idea *model.Idea, viewerID *int64) *model.IdeaResponse {
	resp := &model.IdeaResponse{
		ID:           idea.ID,
		What:         idea.What,
		Who:          idea.Who,
		Features:     idea.Features,
		DoneCriteria: idea.DoneCriteria,
		Inspiration:  idea.Inspiration,
		AuthorID:     idea.AuthorID,
		CreatedAt:    idea.CreatedAt,
	}
	if idea.AuthorID != nil {
		if u, ok := f.users[*idea.AuthorID]; ok {
			name := u.Username
			resp.AuthorUsername = &name
		}
	}
	for pair := range f.upvotes {
		if pair[0] == idea.ID {
			resp.UpvoteCount++
		}
	}
	if viewerID != nil {
		resp.HasUpvoted = f.upvotes[[2]int64{idea.ID, *viewerID}]
	}
	return resp
}

// --- CommentStore ---

func (f *fakeStore) InsertComment(comment *model.Comment) {
	comment.ID = f.id()
	comment.CreatedAt = time.Now().UTC()
	stored := *comment
	f.comments[comment.ID] = &stored
}

// --- UpvoteStore ---

func (f *fakeStore) CountByIdea(ctx context.Context, ideaID int64) (int, error) {
	count := 0
	for pair := range f.upvotes {
		if pair[0] == ideaID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) Exists(ctx context.Context, ideaID, userID int64) (bool, error) {
	return f.upvotes[[2]int64{ideaID, userID}], nil
}

// fakeCommentStore narrows fakeStore to the CommentStore interface, whose
// Insert signature collides with IdeaStore's.
type fakeCommentStore struct{ *fakeStore }

func (f fakeCommentStore) Insert(ctx context.Context, comment *model.Comment) error {
	if _, ok := f.ideas[comment.IdeaID]; !ok {
		return repository.ErrIdeaNotFound
	}
	f.InsertComment(comment)
	return nil
}

func (f fakeCommentStore) Get(ctx context.Context, id int64) (*model.CommentResponse, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}
	return f.composeComment(c), nil
}

func (f fakeCommentStore) ListBySection(ctx context.Context, ideaID int64, section string) ([]model.CommentResponse, error) {
	ids := make([]int64, 0)
	for id, c := range f.comments {
		if c.IdeaID == ideaID && c.Section == section {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []model.CommentResponse{}
	for _, id := range ids {
		out = append(out, *f.composeComment(f.comments[id]))
	}
	return out, nil
}

func (f fakeCommentStore) composeComment(c *model.Comment) *model.CommentResponse {
	resp := &model.CommentResponse{
		ID:        c.ID,
		IdeaID:    c.IdeaID,
		Section:   c.Section,
		Content:   c.Content,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
	}
	if c.AuthorID != nil {
		if u, ok := f.users[*c.AuthorID]; ok {
			name := u.Username
			resp.AuthorUsername = &name
		}
	}
	return resp
}

// fakeUpvoteStore narrows fakeStore to the UpvoteStore interface, whose
// Insert and Delete signatures collide with IdeaStore's.
type fakeUpvoteStore struct{ *fakeStore }

func (f fakeUpvoteStore) Insert(ctx context.Context, ideaID, userID int64) error {
	if _, ok := f.ideas[ideaID]; !ok {
		return repository.ErrIdeaNotFound
	}
	pair := [2]int64{ideaID, userID}
	if f.upvotes[pair] {
		return repository.ErrDuplicateUpvote
	}
	f.upvotes[pair] = true
	return nil
}

func (f fakeUpvoteStore) Delete(ctx context.Context, ideaID, userID int64) error {
	delete(f.upvotes, [2]int64{ideaID, userID})
	return nil
}

// interface checks
var (
	_ UserStore    = (*fakeStore)(nil)
	_ IdeaStore    = (*fakeStore)(nil)
	_ CommentStore = fakeCommentStore{}
	_ UpvoteStore  = fakeUpvoteStore{}
)

// test wiring helpers

func addFakeUser(f *fakeStore, username string) *model.User {
	user := &model.User{Username: username, PasswordHash: "x"}
	_ = f.Create(context.Background(), user)
	return user
}

func addFakeIdea(f *fakeStore, authorID *int64) *model.Idea {
	idea := &model.Idea{
		What:         "W",
		Who:          "H",
		Features:     "F",
		DoneCriteria: "D",
		Inspiration:  "I",
		AuthorID:     authorID,
	}
	_ = f.Insert(context.Background(), idea)
	return idea
}
