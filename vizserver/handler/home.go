package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func Home(battleid string, tps int) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		res, _ := json.Marshal(map[string]string{
			"battleid": battleid,
			"tps":      strconv.Itoa(tps),
			"stream":   "/ws",
		})
		w.Write(res)
	}
}
