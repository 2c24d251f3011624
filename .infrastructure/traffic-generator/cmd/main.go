package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	ordersSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_orders_sent_total",
		Help: "Отправленные заказы по коду ответа",
	}, []string{"status_code"})

	orderLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_order_request_duration_seconds",
		Help:    "Длительность POST /orders в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	})
)

type orderRequest struct {
	Name              string `json:"name"`
	Lastname          string `json:"lastname"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	DeliveryDate      string `json:"delivery_date"`
	DeliveryStartTime string `json:"delivery_start_time"`
	DeliveryEndTime   string `json:"delivery_end_time"`
	ClientID          int64  `json:"client_id"`
	AddressID         int64  `json:"address_id"`
}

// randomOrder иногда генерирует окно больше 8 часов, чтобы в дашборде были и 422.
func randomOrder(seq int) orderRequest {
	start := 8 + rand.IntN(8)
	hours := 1 + rand.IntN(9)

	return orderRequest{
		Name:              "name" + strconv.Itoa(seq%5),
		Lastname:          "lastname" + strconv.Itoa(seq%5),
		Email:             fmt.Sprintf("client%d@email.com", seq%5),
		Phone:             fmt.Sprintf("3462263168 %d", seq%5),
		DeliveryDate:      time.Now().AddDate(0, 0, rand.IntN(7)).Format("2006/01/02"),
		DeliveryStartTime: fmt.Sprintf("%02d:00", start),
		DeliveryEndTime:   fmt.Sprintf("%02d:00", min(start+hours, 23)),
		ClientID:          int64(1 + rand.IntN(5)),
		AddressID:         int64(1 + rand.IntN(5)),
	}
}

func sendOrder(client *http.Client, target string, seq int) {
	body, err := json.Marshal(randomOrder(seq))
	if err != nil {
		log.Printf("encode order: %v", err)
		return
	}

	start := time.Now()
	resp, err := client.Post(target+"/orders", "application/json", bytes.NewReader(body))
	orderLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		ordersSent.WithLabelValues("error").Inc()
		return
	}
	_ = resp.Body.Close()

	ordersSent.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
}

func main() {
	target := flag.String("target", "http://localhost:8080", "dispatch API base URL")
	interval := flag.Duration("interval", time.Second, "pause between orders")
	flag.Parse()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Println(http.ListenAndServe(":2112", nil))
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	for seq := 0; ; seq++ {
		sendOrder(client, *target, seq)
		time.Sleep(*interval)
	}
}
