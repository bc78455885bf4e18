package ws

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

// TrackHub fans order status changes out to subscribed WebSocket clients,
// one subscription group per order.
type TrackHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan StatusEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	db         *gorm.DB
}

type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
	UserID  uint
}

type StatusEvent struct {
	OrderID uint               `json:"orderId"`
	Status  entity.OrderStatus `json:"status"`
	At      time.Time          `json:"at"`
}

func NewTrackHub(db *gorm.DB) *TrackHub {
	return &TrackHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		db:         db,
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *TrackHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.OrderID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// PublishOrderStatus implements services.StatusPublisher. Non-blocking
// for callers inside request handlers.
func (h *TrackHub) PublishOrderStatus(orderID uint, status entity.OrderStatus) {
	go func() {
		h.broadcast <- StatusEvent{OrderID: orderID, Status: status, At: time.Now()}
	}()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// canTrack: the order's customer, the assigned courier, the restaurant
// owner, or an admin.
func (h *TrackHub) canTrack(userID uint, roles entity.RoleSet, o *entity.Order) (bool, error) {
	if roles.Has(entity.RoleAdmin) || o.UserID == userID {
		return true, nil
	}

	var cnt int64
	if err := h.db.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", o.RestaurantID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	if cnt > 0 {
		return true, nil
	}

	err := h.db.Table("courier_assignments a").
		Joins("JOIN couriers c ON c.id = a.courier_id").
		Where("a.order_id = ? AND c.user_id = ? AND a.deleted_at IS NULL", o.ID, userID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// WS route: /ws/orders/:id
func (h *TrackHub) HandleWebSocket(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	orderID := uint(id)
	userID := utils.CurrentUserID(c)
	roles := utils.CurrentRoles(c)

	var o entity.Order
	if err := h.db.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	ok, err := h.canTrack(userID, roles, &o)
	if err != nil || !ok {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	// current state first, so subscribers don't have to wait for a change.
	// Written before registering: once registered the hub loop owns all
	// writes to the connection.
	_ = conn.WriteJSON(StatusEvent{OrderID: o.ID, Status: o.Status, At: time.Now()})

	sub := Subscription{Conn: conn, OrderID: orderID, UserID: userID}
	h.register <- sub

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			// consume (and ignore) client frames to detect disconnect
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
