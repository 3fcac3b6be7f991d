package main

import (
	"log"
	"net/http"
	"os"

	"github.com/rennabyte/strumhaus/app/cmd"
	"github.com/rennabyte/strumhaus/app/configs"
	"github.com/rennabyte/strumhaus/app/routes"
	"github.com/rennabyte/strumhaus/app/utils/sessions"
)

func main() {
	env := configs.LoadEnv()

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	rdb := configs.OpenRedis()
	if rdb != nil {
		log.Println("✅ Redis connected, rating cache enabled.")
	} else {
		log.Println("Redis unavailable, rating averages served from the database.")
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("session keys: ", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	router := routes.NewRouter(db, rdb, env, sessionStore)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
