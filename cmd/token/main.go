// Command token mints an access token for a roster employee. It is meant
// for local runs against the memory store or a seeded database.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
)

func main() {
	code := flag.String("code", "EMP001", "employee code from the default roster")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	for _, emp := range fixtures.DefaultRoster() {
		if emp.EmployeeCode != *code {
			continue
		}

		token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).
			GenerateAccessToken(emp.ID, emp.Email, emp.Role)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error signing token:", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "%s (%s, %s) expires %s\n", emp.Name, emp.EmployeeCode, emp.Role, time.Unix(expiresAt, 0).Format(time.RFC3339))
		if emp.Role == user.RoleManager {
			fmt.Fprintln(os.Stderr, "manager routes enabled")
		}
		fmt.Println(token)
		return
	}

	fmt.Fprintf(os.Stderr, "unknown employee code %q\n", *code)
	os.Exit(1)
}
