package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"dbxconsole/internal/server"
)

func main() {
	var port int
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "dbxconsole",
		Short: "Admin console backend for Databricks tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("failed to load %s: %w", envFile, err)
				}
			}
			return serve(port)
		},
	}

	rootCmd.Flags().IntVar(&port, "port", 0, "listen port (defaults to PORT or 8080)")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "extra env file to load")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(port int) error {
	srv := server.NewServer(port)

	go func() {
		log.Printf("Server listening on %s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(fmt.Sprintf("http server error: %s", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server gracefully ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server Shutdown:", err)
	}
	log.Println("Server exiting")
	return nil
}
