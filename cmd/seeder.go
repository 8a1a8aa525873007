package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a sample organization",
	Long:  `Seed the database with a sample reporting hierarchy for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm session: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM people").Error; err != nil {
				log.Fatalf("failed to clear people: %v", err)
			}
			if err := db.Exec("DELETE FROM companies").Error; err != nil {
				log.Fatalf("failed to clear companies: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		companyID := uuid.NewString()
		if err := db.Exec(
			"INSERT INTO companies (id, code, name, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now()) ON CONFLICT (code) DO NOTHING",
			companyID, "PTKS", "PT Kebun Sejahtera",
		).Error; err != nil {
			log.Fatalf("failed to insert company: %v", err)
		}
		if err := db.Raw("SELECT id FROM companies WHERE code = ?", "PTKS").Scan(&companyID).Error; err != nil {
			log.Fatalf("failed to read company id: %v", err)
		}

		seedPerson := func(username, name, role string, managerID *string) string {
			var existing string
			row := db.Raw("SELECT id FROM people WHERE username = ?", username).Row()
			if err := row.Scan(&existing); err == nil {
				fmt.Printf("%s already exists, skipping\n", username)
				return existing
			}

			id := uuid.NewString()
			if err := db.Exec(
				"INSERT INTO people (id, username, name, password_hash, role, manager_id, company_id, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, true, now(), now())",
				id, username, name, string(hash), role, managerID, companyID,
			).Error; err != nil {
				log.Fatalf("failed to insert %s: %v", username, err)
			}
			fmt.Println("Seeded person:", username)
			return id
		}

		areaID := seedPerson("budi.area", "Budi Hartono", "AREA_MANAGER", nil)
		mgr1ID := seedPerson("sari.manager", "Sari Wulandari", "MANAGER", &areaID)
		mgr2ID := seedPerson("agus.manager", "Agus Prasetyo", "MANAGER", &areaID)
		seedPerson("dewi.asisten", "Dewi Lestari", "ASISTEN", &mgr1ID)
		seedPerson("rina.asisten", "Rina Kusuma", "ASISTEN", &mgr1ID)
		seedPerson("tono.asisten", "Tono Saputra", "ASISTEN", &mgr2ID)

		fmt.Println("Seeding complete")
	},
}
