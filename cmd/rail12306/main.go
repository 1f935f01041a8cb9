package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	rail12306 "github.com/railtools/rail12306"
	"github.com/railtools/rail12306/config"
)

func main() {
	op := flag.String("op", "tickets", "tickets|transfers|price|trainno|route|stations")
	from := flag.String("from", "", "departure station (name, pinyin or telecode)")
	to := flag.String("to", "", "arrival station (name, pinyin or telecode)")
	date := flag.String("date", "", "travel date YYYY-MM-DD")
	middle := flag.String("middle", "", "transfer middle station (transfers)")
	train := flag.String("train", "", "train code or internal train number")
	query := flag.String("query", "", "station search query (stations)")
	limit := flag.Int("limit", 10, "station search result limit")
	flag.Parse()

	rail12306.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		config.Config = config.Default()
	}

	p := rail12306.NewFromConfig(config.Config)

	var result interface{}
	switch *op {
	case "tickets":
		result = p.QueryTickets(rail12306.TicketRequest{From: *from, To: *to, Date: *date})
	case "transfers":
		result = p.QueryTransfers(rail12306.TransferRequest{From: *from, To: *to, Date: *date, Middle: *middle})
	case "price":
		result = p.QueryTicketPrice(rail12306.PriceRequest{From: *from, To: *to, Date: *date, TrainCode: *train})
	case "trainno":
		result = p.LookupTrainNumberByCode(rail12306.TrainNumberRequest{TrainCode: *train, From: *from, To: *to, Date: *date})
	case "route":
		result = p.QueryRouteStops(rail12306.RouteRequest{TrainNo: *train, From: *from, To: *to, Date: *date})
	case "stations":
		result = p.SearchStations(*query, *limit)
	default:
		fmt.Fprintf(os.Stderr, "unknown op %q\n", *op)
		os.Exit(2)
	}

	buf, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(buf))
}
