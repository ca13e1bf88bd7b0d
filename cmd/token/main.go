// Command token mints an access token for a user id, signed with the
// server's secret key:
//
//	token -user 42 -s secretKey -t 1440
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/jobtracker/internal/flagx"
	"github.com/dmitrijs2005/jobtracker/internal/server/auth"
	"github.com/dmitrijs2005/jobtracker/internal/server/config"
)

func main() {

	cfg := config.LoadConfig()

	fs := flag.NewFlagSet("token", flag.ExitOnError)
	userID := fs.String("user", "", "user id the token is issued to")
	_ = fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-user", "--user"}))

	if *userID == "" {
		log.Fatal("-user is required")
	}

	token, err := auth.GenerateToken(*userID, []byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(token)

}
