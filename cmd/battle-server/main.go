package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	notify "github.com/bitly/go-notify"

	"github.com/FaabB/auto-battle-1-sub002/common/config"
	"github.com/FaabB/auto-battle-1-sub002/common/utils"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
	"github.com/FaabB/auto-battle-1-sub002/game/autobattle"
	gamecommon "github.com/FaabB/auto-battle-1-sub002/game/common"
	"github.com/FaabB/auto-battle-1-sub002/vizserver"
)

func main() {

	rand.Seed(time.Now().UnixNano())

	configpath := flag.String("config", "", "TOML balance configuration; defaults apply when empty")
	vizaddr := flag.String("viz", ":8080", "Address serving the visualization stream")
	noviz := flag.Bool("noviz", false, "Run headless, without the visualization server")
	nbunits := flag.Int("units", 8, "Number of units spawned per team")
	nbbuildings := flag.Int("buildings", 2, "Number of buildings spawned per team")
	maxduration := flag.Duration("duration", 10*time.Minute, "Maximum battle duration")

	flag.Parse()

	cfg := config.Default()
	if *configpath != "" {
		var err error
		cfg, err = config.Load(*configpath)
		utils.Check(err, "Could not load battle configuration "+*configpath)
	}

	game := autobattle.NewAutobattleGame(cfg)
	utils.Debug("battle", "Battle "+game.GetBattleID()+" starting")

	spawnArmies(game, cfg, *nbunits, *nbbuildings)

	if !*noviz {
		viz := vizserver.NewVizService(*vizaddr, vizserver.BattleInfo{
			BattleID: game.GetBattleID(),
			Tps:      cfg.Simulation.Tps,
		})
		go func() {
			err := viz.ListenAndServe()
			utils.Check(err, "Could not start viz server on "+*vizaddr)
		}()
	}

	destroyedchan := make(chan interface{}, 64)
	notify.Start(autobattle.EventDestroyed, destroyedchan)
	go func() {
		for payload := range destroyedchan {
			if ev, ok := payload.(autobattle.DestroyedEvent); ok {
				utils.DebugWithContext("battle", "entity destroyed", utils.Context{
					"id":   ev.EntityID,
					"type": ev.Type,
					"team": ev.Team,
				})
			}
		}
	}()

	runBattle(game, cfg.Simulation.Tps, *maxduration)

	if winner, ok := game.Winner(); ok {
		log.Println("Battle " + game.GetBattleID() + " over; winner: " + winner.String())
	} else {
		log.Println("Battle " + game.GetBattleID() + " over; no winner")
	}
}

// runBattle drives the tick loop until the game reports completion, the
// duration cap is reached, or the process is told to stop.
func runBattle(game gamecommon.GameInterface, tps int, maxduration time.Duration) {

	hassigtermed := make(chan os.Signal, 2)
	signal.Notify(hassigtermed, os.Interrupt, syscall.SIGTERM)

	dt := 1.0 / float64(tps)
	ticker := time.Tick(time.Duration(1000/tps) * time.Millisecond)
	deadline := time.After(maxduration)

	for {
		select {
		case <-hassigtermed:
			log.Println("Battle interrupted")
			os.Exit(1)
		case <-deadline:
			log.Println("Battle duration cap reached")
			return
		case <-ticker:
			game.Step(dt)

			notify.PostTimeout("viz:message", string(game.ProduceVizMessageJson()), time.Millisecond)

			if game.IsFinished() {
				return
			}
		}
	}
}

// spawnArmies places each team's fortress against its own edge, a column
// of buildings in front of it and the units in a vertical line, facing
// the opposing side across the width of the battlefield.
func spawnArmies(game *autobattle.AutobattleGame, cfg config.BattleConfig, nbunits int, nbbuildings int) {

	width := cfg.Battlefield.Width
	height := cfg.Battlefield.Height

	game.NewEntityFortress(autobattle.TeamPlayer, vector.MakeVector2(cfg.Fortress.HalfWidth, height/2))
	game.NewEntityFortress(autobattle.TeamEnemy, vector.MakeVector2(width-cfg.Fortress.HalfWidth, height/2))

	for _, team := range []autobattle.Team{autobattle.TeamPlayer, autobattle.TeamEnemy} {
		sign := team.AdvanceSign()

		// distance from own edge, mirrored for the enemy side
		buildingsX := cfg.Fortress.HalfWidth*2 + cfg.Building.HalfWidth*3
		unitsX := cfg.Fortress.HalfWidth*2 + cfg.Unit.Radius*8

		for i := 0; i < nbbuildings; i++ {
			y := height * float64(i+1) / float64(nbbuildings+1)
			game.NewEntityBuilding(team, vector.MakeVector2(
				width/2-sign*(width/2-buildingsX),
				y,
			))
		}

		for i := 0; i < nbunits; i++ {
			y := height * float64(i+1) / float64(nbunits+1)
			game.NewEntityUnit(team, vector.MakeVector2(
				width/2-sign*(width/2-unitsX),
				y,
			))
		}
	}
}
