package websocket

import (
	"context"
	"encoding/json"
	"fmt"
)

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", errBadPayload, err)
	}

	return payload, nil
}

func (that *Server) handleRoomCreate(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleRoomCreate")

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	view, err := conn.duel.CreateRoom(ctx, payload.Name)
	if err != nil {
		return err
	}

	conn.sendMessage(msg.Action, view)

	log.Info("room created", "room", view.RoomID)

	return nil
}

func (that *Server) handleRoomJoin(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleRoomJoin")

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	view, err := conn.duel.JoinRoom(ctx, payload.RoomID, payload.Name)
	if err != nil {
		return err
	}

	conn.sendMessage(msg.Action, view)

	log.Info("player joined room", "room", view.RoomID)

	return nil
}

func (that *Server) handleDuelStart(ctx context.Context, conn *connection, msg *Message) error {
	if err := conn.duel.Start(ctx); err != nil {
		return err
	}

	conn.sendMessage(msg.Action, conn.duel.View())

	return nil
}

func (that *Server) handleDuelKey(_ context.Context, conn *connection, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	return conn.duel.Key(payload.Key)
}

func (that *Server) handleDuelForfeit(ctx context.Context, conn *connection, _ *Message) error {
	return conn.duel.Forfeit(ctx)
}

func (that *Server) handleSoloStart(_ context.Context, conn *connection, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if err = conn.duel.StartSolo(payload.Name); err != nil {
		return err
	}

	conn.sendMessage(msg.Action, conn.duel.View())

	return nil
}

func (that *Server) handleGridJoin(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleGridJoin")

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if err = conn.grid.Join(ctx, payload.RoomID, payload.Name); err != nil {
		return err
	}

	conn.sendMessage(msg.Action, conn.grid.State())

	log.Info("player joined grid room", "room", payload.RoomID)

	return nil
}

func (that *Server) handleGridSuit(ctx context.Context, conn *connection, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	return conn.grid.Suit(ctx, payload.Choice)
}

func (that *Server) handleGridMove(ctx context.Context, conn *connection, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.Cell == nil {
		return errBadPayload
	}

	return conn.grid.Move(ctx, *payload.Cell)
}

func (that *Server) handleGridReset(ctx context.Context, conn *connection, _ *Message) error {
	return conn.grid.Reset(ctx)
}
