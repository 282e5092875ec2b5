package vizserver

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	apphandler "github.com/FaabB/auto-battle-1-sub002/vizserver/handler"
)

// BattleInfo is what the viz server knows about the battle it streams;
// the simulation itself stays out of reach of the HTTP layer.
type BattleInfo struct {
	BattleID string
	Tps      int
}

type VizService struct {
	addr   string
	battle BattleInfo
}

func NewVizService(addr string, battle BattleInfo) *VizService {
	return &VizService{
		addr:   addr,
		battle: battle,
	}
}

func (viz *VizService) ListenAndServe() error {

	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.battle.BattleID, viz.battle.Tps)),
	)).Methods("GET")

	router.Handle("/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(viz.battle.BattleID)),
	)).Methods("GET")

	log.Println("VIZ Listening on " + viz.addr)

	return http.ListenAndServe(viz.addr, router)
}
