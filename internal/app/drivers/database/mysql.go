package database

import (
	"database/sql"
	"fmt"
	"log"
	"sparrc-service/internal/app/config"

	_ "github.com/go-sql-driver/mysql"
)

func NewMySQLDB(driverConfig *config.DriverConfig) *sql.DB {
	connectionString := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		driverConfig.MySQL.Username,
		driverConfig.MySQL.Password,
		driverConfig.MySQL.Host,
		driverConfig.MySQL.Port,
		driverConfig.MySQL.DbName)

	db, err := sql.Open("mysql", connectionString)
	if err != nil {
		log.Fatalf("Failed to open mysql database connection: %s", err.Error())
	}

	err = db.Ping()
	if err != nil {
		log.Fatalf("Failed to connect to mysql database: %s", err.Error())
	}

	log.Println("Successfully connected to mysql database")

	return db
}
