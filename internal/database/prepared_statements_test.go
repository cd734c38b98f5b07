package database

import (
	"sync"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
)

// Les accesseurs doivent pouvoir être appelés par plusieurs goroutines à la
// fois : chacun construit sa propre Query, il n'y a plus d'état partagé à
// muter via Bind. Sans session configurée, chacun retourne nil sans paniquer.
func TestPreparedAccessorsConcurrent(t *testing.T) {
	t.Setenv("SCYLLA_KS_USERS_KEYSPACE", "")

	accessors := []func() *gocql.Query{
		GetPreparedGetUserByEmail,
		GetPreparedGetUserByID,
		GetPreparedInsertUser,
		GetPreparedInsertUserByEmail,
		GetPreparedUpdateUser,
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for _, accessor := range accessors {
			wg.Add(1)
			go func(get func() *gocql.Query) {
				defer wg.Done()
				assert.Nil(t, get())
			}(accessor)
		}
	}
	wg.Wait()
}
