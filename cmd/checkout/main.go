// Command checkout prices a single rental and prints the agreement.
//
//	checkout -tool JAKR -days 20 -discount 10 -date 07/02/2020
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/warp/tool-rental/catalog"
	"github.com/warp/tool-rental/generic"
	"github.com/warp/tool-rental/logger"
	"github.com/warp/tool-rental/rental"
)

func main() {
	toolCode := flag.String("tool", "", "tool code (LADW, CHNS, JAKD, JAKR)")
	days := flag.Int("days", 1, "rental day count")
	discount := flag.Int("discount", 0, "discount percent (0-100)")
	date := flag.String("date", "", "checkout date, MM/DD/YYYY or YYYY-MM-DD (default today)")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	log := logger.New(os.Stderr, *logLevel, "text")

	checkoutDate := generic.Today()
	if *date != "" {
		d, err := generic.ParseDate(*date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid date %q: %v\n", *date, err)
			os.Exit(2)
		}
		checkoutDate = d
	}

	svc := rental.NewService(catalog.NewDefault(), log)
	agreement, err := svc.Checkout(context.Background(), rental.Request{
		ToolCode:        catalog.NormalizeCode(*toolCode),
		RentalDayCount:  *days,
		DiscountPercent: *discount,
		CheckoutDate:    checkoutDate,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Print(agreement.String())
}
