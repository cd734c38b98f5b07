package database

import (
	"log"
	"sync"

	"github.com/gocql/gocql"
)

// CQL des requêtes fréquentes du keyspace users. gocql prépare chaque
// statement au premier passage et le met en cache par chaîne, donc créer
// une gocql.Query par appel reste une exécution préparée. Une *gocql.Query
// partagée entre goroutines ne l'est pas : Bind mute la Query.
const (
	cqlGetUserByEmail = "SELECT user_id FROM users_by_email WHERE email = ?"
	cqlGetUserByID    = `SELECT email, password, name, phone, role, provider, provider_id
		FROM users WHERE user_id = ?`
	cqlInsertUser = `INSERT INTO users (user_id, email, password, name, phone, role, provider, provider_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	cqlInsertUserByEmail = "INSERT INTO users_by_email (email, user_id) VALUES (?, ?)"
	cqlUpdateUser        = "UPDATE users SET name = ?, phone = ?, email = ?, updated_at = ? WHERE user_id = ?"
)

var preparedOnce sync.Once

// InitPreparedStatements vérifie au démarrage que la session users répond
func InitPreparedStatements() {
	preparedOnce.Do(func() {
		if _, err := GetUsersSession(); err != nil {
			log.Printf("⚠️ Impossible d'initialiser les prepared statements: %v", err)
			return
		}
		log.Println("✅ Prepared statements initialisés")
	})
}

// usersQuery retourne une Query neuve sur la session users, nil si la
// session est indisponible (même contrat que l'ancien cache de Query).
func usersQuery(stmt string) *gocql.Query {
	session, err := GetUsersSession()
	if err != nil {
		return nil
	}
	return session.Query(stmt)
}

func GetPreparedGetUserByEmail() *gocql.Query {
	return usersQuery(cqlGetUserByEmail)
}

func GetPreparedGetUserByID() *gocql.Query {
	return usersQuery(cqlGetUserByID)
}

func GetPreparedInsertUser() *gocql.Query {
	return usersQuery(cqlInsertUser)
}

func GetPreparedInsertUserByEmail() *gocql.Query {
	return usersQuery(cqlInsertUserByEmail)
}

func GetPreparedUpdateUser() *gocql.Query {
	return usersQuery(cqlUpdateUser)
}
