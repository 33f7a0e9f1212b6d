package sqlite

import (
	"context"
	"database/sql"
	"time"

	"timereport/internal/domain"

	_ "modernc.org/sqlite"
)

const dateFormat = "2006-01-02"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	login TEXT PRIMARY KEY,
	name  TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS projects (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS customers (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	login       TEXT NOT NULL REFERENCES users(login),
	date        TEXT NOT NULL,
	seconds     INTEGER NOT NULL,
	text        TEXT NOT NULL DEFAULT '',
	story       TEXT NOT NULL DEFAULT '',
	project_id  INTEGER REFERENCES projects(id),
	customer_id INTEGER REFERENCES customers(id)
);
CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);
`

// Store is a local sqlite implementation of tracker.Source. It lets
// reports be generated without a tracker service, from a task database
// populated through the Create methods.
type Store struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// New opens (creating if necessary) a task store at the given path.
// Every statement runs under the given query timeout.
func New(dbPath string, queryTimeout time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleDatabaseError("open database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, HandleDatabaseError("create schema", err)
	}

	return &Store{db: db, queryTimeout: queryTimeout}, nil
}

// withTimeout bounds a statement context with the configured query timeout
func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateUser inserts or updates a user
func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO users (login, name) VALUES (?, ?)
		ON CONFLICT(login) DO UPDATE SET name = excluded.name`
	if _, err := s.db.ExecContext(ctx, query, user.Login, user.Name); err != nil {
		return HandleDatabaseError("create user", err)
	}
	return nil
}

// CreateProject inserts a project and returns it with its assigned ID
func (s *Store) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := ExecuteWithLastInsertID(ctx, s.db, `INSERT INTO projects (name) VALUES (?)`, project.Name)
	if err != nil {
		return domain.Project{}, err
	}
	project.ID = id
	return project, nil
}

// CreateCustomer inserts a customer and returns it with its assigned ID
func (s *Store) CreateCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := ExecuteWithLastInsertID(ctx, s.db, `INSERT INTO customers (name) VALUES (?)`, customer.Name)
	if err != nil {
		return domain.Customer{}, err
	}
	customer.ID = id
	return customer, nil
}

// CreateTask inserts a task record
func (s *Store) CreateTask(ctx context.Context, task domain.Task, projectID, customerID *int64) error {
	if err := s.CreateUser(ctx, task.User); err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `
	INSERT INTO tasks (login, date, seconds, text, story, project_id, customer_id)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := ExecuteWithLastInsertID(ctx, s.db, query,
		task.User.Login,
		task.Day().Format(dateFormat),
		int64(task.Length/time.Second),
		task.Text,
		task.Story,
		projectID,
		customerID,
	)
	return err
}

// TasksInRange returns tasks in [start, end] matching the filter
func (s *Store) TasksInRange(ctx context.Context, start, end time.Time, filter domain.Filter) ([]domain.Task, error) {
	query := `
	SELECT t.login, u.name, t.date, t.seconds, t.text, t.story
	FROM tasks t
	JOIN users u ON u.login = t.login
	WHERE t.date >= ? AND t.date <= ?`
	args := []interface{}{domain.Day(start).Format(dateFormat), domain.Day(end).Format(dateFormat)}

	if filter.Project != nil {
		query += ` AND t.project_id = ?`
		args = append(args, filter.Project.ID)
	}
	if filter.Customer != nil {
		query += ` AND t.customer_id = ?`
		args = append(args, filter.Customer.ID)
	}
	if filter.User != nil {
		query += ` AND t.login = ?`
		args = append(args, filter.User.Login)
	}
	query += ` ORDER BY t.date ASC, t.id ASC`

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return QueryMultiple(ctx, s.db, query, scanTasks, "tasks", args...)
}

// Projects returns all projects in the store
func (s *Store) Projects(ctx context.Context) ([]domain.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, name FROM projects ORDER BY name ASC`
	return QueryMultiple(ctx, s.db, query, scanProjects, "projects")
}

// Customers returns all customers in the store
func (s *Store) Customers(ctx context.Context) ([]domain.Customer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, name FROM customers ORDER BY name ASC`
	return QueryMultiple(ctx, s.db, query, scanCustomers, "customers")
}

// Users returns all users in the store
func (s *Store) Users(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `SELECT login, name FROM users ORDER BY login ASC`
	return QueryMultiple(ctx, s.db, query, scanUsers, "users")
}

func scanTasks(rows Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		var (
			login, name, date, text, story string
			seconds                        int64
		)
		if err := rows.Scan(&login, &name, &date, &seconds, &text, &story); err != nil {
			return nil, err
		}
		day, err := time.ParseInLocation(dateFormat, date, time.UTC)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, domain.Task{
			User:   domain.User{Login: login, Name: name},
			Date:   day,
			Length: time.Duration(seconds) * time.Second,
			Text:   text,
			Story:  story,
		})
	}
	return tasks, nil
}

func scanProjects(rows Rows) ([]domain.Project, error) {
	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func scanCustomers(rows Rows) ([]domain.Customer, error) {
	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func scanUsers(rows Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Login, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
