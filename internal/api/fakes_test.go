package api

import (
	"sort"
	"time"

	"github.com/artilluminati/pautina-hosting/internal/models"
	"github.com/artilluminati/pautina-hosting/internal/storage"
)

// fakeStore is an in-memory Store honoring the same uniqueness and
// not-found contract the real database enforces.
type fakeStore struct {
	users      map[int64]models.User
	hosts      map[int64]models.Host
	temp       map[string]string
	nextUserID int64
	nextHostID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: map[int64]models.User{},
		hosts: map[int64]models.Host{},
		temp:  map[string]string{},
	}
}

func (f *fakeStore) CreateUser(user models.User) (models.User, error) {
	// email first, phone second, matching the constraint ordering
	for _, u := range f.users {
		if u.Email == user.Email {
			return models.User{}, storage.ErrEmailTaken
		}
	}
	for _, u := range f.users {
		if u.Phone == user.Phone {
			return models.User{}, storage.ErrPhoneTaken
		}
	}
	f.nextUserID++
	user.ID = f.nextUserID
	user.IsActive = true
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStore) GetUserByID(id int64) (models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) GetUserByEmail(email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (f *fakeStore) GetUserByPhone(phone string) (models.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (f *fakeStore) ListUsers() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpdateUserPassword(id int64, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.PasswordHash = passwordHash
	f.users[id] = u
	return nil
}

func (f *fakeStore) CreateTempPassword(token, tempPassword string) error {
	f.temp[token] = tempPassword
	return nil
}

func (f *fakeStore) CreateHost(host models.Host) (models.Host, error) {
	for _, h := range f.hosts {
		if h.Subdomain == host.Subdomain {
			return models.Host{}, storage.ErrSubdomainTaken
		}
	}
	f.nextHostID++
	host.ID = f.nextHostID
	if host.Status == "" {
		host.Status = models.StatusPending
	}
	host.CreatedAt = time.Now()
	f.hosts[host.ID] = host
	return host, nil
}

func (f *fakeStore) GetHostByID(id int64) (models.Host, error) {
	h, ok := f.hosts[id]
	if !ok {
		return models.Host{}, storage.ErrNotFound
	}
	return h, nil
}

func (f *fakeStore) ListHostsByOwner(ownerID int64) ([]models.Host, error) {
	out := make([]models.Host, 0)
	for _, h := range f.hosts {
		if h.OwnerID == ownerID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) SetHostStatus(id int64, status models.HostStatus) (models.Host, error) {
	h, ok := f.hosts[id]
	if !ok {
		return models.Host{}, storage.ErrNotFound
	}
	h.Status = status
	f.hosts[id] = h
	return h, nil
}
