package repo

// NewRepoWithDB builds a Repo over any pool-like db.
func NewRepoWithDB(db pgxDB, newID func() string) *Repo {
	r := newRepo(db)
	r.newID = newID
	return r
}
