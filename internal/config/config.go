package config

import (
	"os"
	"strconv"
	"sync"

	"dbxconsole/internal/schema"
)

// Connection holds everything needed to reach a Databricks SQL warehouse. It is
// a plain value: callers take a snapshot and pass it down to each warehouse
// access, so there is no process-wide connection state to mutate underneath an
// in-flight request.
type Connection struct {
	ServerHostname string `json:"serverHostname" binding:"required"`
	HTTPPath       string `json:"httpPath" binding:"required"`
	AccessToken    string `json:"accessToken" binding:"required"`
	Port           int    `json:"port"`
	Catalog        string `json:"catalog"`
	Schema         string `json:"schema"`
}

// Namespace returns the catalog+schema pair the connection targets.
func (c Connection) Namespace() schema.Namespace {
	return schema.Namespace{Catalog: c.Catalog, Schema: c.Schema}
}

func (c Connection) withDefaults() Connection {
	if c.Port == 0 {
		c.Port = 443
	}
	if c.Catalog == "" {
		c.Catalog = "main"
	}
	if c.Schema == "" {
		c.Schema = "default"
	}
	return c
}

// FromEnv builds a connection from the environment. Returns ok=false when the
// required fields are not all set.
func FromEnv() (Connection, bool) {
	port, _ := strconv.Atoi(os.Getenv("DATABRICKS_PORT"))
	c := Connection{
		ServerHostname: os.Getenv("DATABRICKS_SERVER_HOSTNAME"),
		HTTPPath:       os.Getenv("DATABRICKS_HTTP_PATH"),
		AccessToken:    os.Getenv("DATABRICKS_ACCESS_TOKEN"),
		Port:           port,
		Catalog:        os.Getenv("DATABRICKS_CATALOG"),
		Schema:         os.Getenv("DATABRICKS_SCHEMA"),
	}
	if c.ServerHostname == "" || c.HTTPPath == "" || c.AccessToken == "" {
		return Connection{}, false
	}
	return c.withDefaults(), true
}

// Store hands out connection snapshots to request handlers. A reconfigure swaps
// the whole value; requests already holding a snapshot keep using it.
type Store struct {
	mu   sync.RWMutex
	conn Connection
	set  bool
}

func NewStore() *Store {
	s := &Store{}
	if c, ok := FromEnv(); ok {
		s.conn = c
		s.set = true
	}
	return s
}

// Set replaces the active connection.
func (s *Store) Set(c Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = c.withDefaults()
	s.set = true
}

// Current returns a snapshot of the active connection. ok is false until a
// connection has been configured.
func (s *Store) Current() (Connection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn, s.set
}
