package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kinoline/kinoline/pkg/api"
	"github.com/urfave/cli/v2"
	"go-micro.dev/v4"
	"go-micro.dev/v4/client"
	"go-micro.dev/v4/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

const defaultTimeout = 2 * time.Minute

const serviceName = "kinoline"

func main() {
	var query string
	service := micro.NewService(
		micro.Name("kinoline.usher"),
		micro.Flags(
			&cli.StringFlag{
				Name:        "query",
				Usage:       "Title to look for",
				Required:    true,
				Destination: &query,
			},
		),
	)
	service.Init()

	c := service.Client()

	queue := api.QueueResponse{}
	req := c.NewRequest(serviceName, "Screening.GetAll", &emptypb.Empty{})
	if err := c.Call(context.Background(), req, &queue, client.WithRequestTimeout(defaultTimeout)); err != nil {
		panic(err)
	}

	for _, item := range queue.Items {
		logger.Infof("Item '%s' is already queued", item.Title)
	}

	results := api.ListItemsResponse{}
	req = c.NewRequest(serviceName, "Catalog.Search", &api.SearchRequest{Text: query, Limit: 5})
	if err := c.Call(context.Background(), req, &results, client.WithRequestTimeout(defaultTimeout)); err != nil {
		panic(err)
	}

	for i, item := range results.Items {
		fmt.Printf("#%d. %s (%s, %d) [%.1f]\n", i+1, item.Title, item.Genre, item.Year, item.Rating)
	}
	fmt.Println("\nSelect which one:")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	no, err := strconv.ParseInt(scanner.Text(), 10, 32)
	if err != nil {
		panic(err)
	}

	pick := results.Items[no-1]
	req = c.NewRequest(serviceName, "Screening.Add", &api.AddRequest{Id: pick.Id})
	if err = c.Call(context.Background(), req, &emptypb.Empty{}, client.WithRequestTimeout(defaultTimeout)); err != nil {
		panic(err)
	}

	playing := api.ItemResponse{}
	req = c.NewRequest(serviceName, "Screening.PlayCurrent", &emptypb.Empty{})
	if err = c.Call(context.Background(), req, &playing, client.WithRequestTimeout(defaultTimeout)); err != nil {
		panic(err)
	}
	fmt.Printf("Now playing: %s (%d min)\n", playing.Item.Title, playing.Item.Duration)
}
