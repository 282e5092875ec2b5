package handler

import (
	"fmt"
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/websocket"

	"github.com/FaabB/auto-battle-1-sub002/common/utils"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

func Websocket(battleid string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		defer c.Close()

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Read from the client; mandatory to notice when the websocket is
		// closed client side
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		vizmsgchan := make(chan interface{})
		notify.Start("viz:message", vizmsgchan)
		defer notify.Stop("viz:message", vizmsgchan)

		for {
			select {
			case <-clientclosedsocket:
				{
					log.Println("<-clientclosedsocket")
					return
				}
			case msg := <-incomingmsg:
				{
					if msg.err != nil {
						return
					}
				}
			case vizmsg := <-vizmsgchan:
				{
					vizmsgString, ok := vizmsg.(string)
					utils.Assert(ok, "Failed to cast vizmessage into string")

					c.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("{\"type\":\"frame\", \"data\": %s}", vizmsgString)))
				}
			}
		}
	}
}
