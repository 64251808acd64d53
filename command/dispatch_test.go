package command

import (
	"strings"
	"testing"

	"valuecore/object"
)

func TestDispatchObjectEncodingLifecycleScenarioS7(t *testing.T) {
	store := object.NewStore()
	store.Set("greeting", object.MakeString([]byte("hello")))

	reply := Dispatch(store, "OBJECT", []string{"ENCODING", "greeting"})
	if reply.Type != ReplyBulkString || reply.Bulk != "embstr" {
		t.Fatalf("expected embstr, got type=%d bulk=%q err=%v", reply.Type, reply.Bulk, reply.Err)
	}

	long := make([]byte, 50)
	for i := range long {
		long[i] = 'x'
	}
	store.Set("greeting", object.MakeString(long))
	reply = Dispatch(store, "OBJECT", []string{"ENCODING", "greeting"})
	if reply.Bulk != "raw" {
		t.Fatalf("expected raw after growing past the embed threshold, got %q", reply.Bulk)
	}

	store.Set("greeting", object.MakeFromInt(42))
	reply = Dispatch(store, "OBJECT", []string{"ENCODING", "greeting"})
	if reply.Bulk != "int" {
		t.Fatalf("expected int, got %q", reply.Bulk)
	}
}

func TestDispatchObjectUnknownKeyReturnsNil(t *testing.T) {
	store := object.NewStore()
	reply := Dispatch(store, "OBJECT", []string{"ENCODING", "missing"})
	if reply.Type != ReplyNil {
		t.Fatalf("expected nil reply for unknown key, got type=%d", reply.Type)
	}
}

func TestDispatchObjectWrongArity(t *testing.T) {
	store := object.NewStore()
	reply := Dispatch(store, "OBJECT", []string{"ENCODING"})
	if reply.Type != ReplyError {
		t.Fatalf("expected wrong-arity error, got type=%d", reply.Type)
	}
}

func TestDispatchObjectRefcount(t *testing.T) {
	store := object.NewStore()
	store.Set("k", object.MakeRaw([]byte("a raw value")))
	reply := Dispatch(store, "OBJECT", []string{"REFCOUNT", "k"})
	if reply.Type != ReplyInteger || reply.Integer != 1 {
		t.Fatalf("expected refcount 1, got type=%d integer=%d", reply.Type, reply.Integer)
	}
}

func TestDispatchMemoryUsage(t *testing.T) {
	store := object.NewStore()
	store.Set("k", object.MakeString([]byte("hello")))
	reply := Dispatch(store, "MEMORY", []string{"USAGE", "k"})
	if reply.Type != ReplyInteger || reply.Integer <= 0 {
		t.Fatalf("expected positive size, got type=%d integer=%d", reply.Type, reply.Integer)
	}
}

func TestDispatchMemoryStatsIncludesDatabaseEntry(t *testing.T) {
	store := object.NewStore()
	store.Set("k", object.MakeString([]byte("hello")))

	reply := Dispatch(store, "MEMORY", []string{"STATS"})
	if reply.Type != ReplyArray {
		t.Fatalf("expected array reply, got type=%d", reply.Type)
	}
	found := false
	for _, item := range reply.Array {
		if item.Bulk == "db0.keys" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected db0.keys pair among MEMORY STATS output, got %+v", reply.Array)
	}
}

func TestDispatchMemoryDoctorReportsEmptyOnFreshStore(t *testing.T) {
	store := object.NewStore()
	reply := Dispatch(store, "MEMORY", []string{"DOCTOR"})
	if reply.Type != ReplyBulkString {
		t.Fatalf("expected bulk reply, got type=%d", reply.Type)
	}
	if !strings.Contains(reply.Bulk, "[info]") {
		t.Errorf("expected an info finding for a pressure-free fresh store, got %q", reply.Bulk)
	}
}

func TestDispatchMemoryHelpAndUnknownSubcommand(t *testing.T) {
	store := object.NewStore()
	reply := Dispatch(store, "MEMORY", []string{"HELP"})
	if reply.Type != ReplyArray || len(reply.Array) == 0 {
		t.Fatalf("expected non-empty help array, got type=%d", reply.Type)
	}

	reply = Dispatch(store, "MEMORY", []string{"BOGUS"})
	if reply.Type != ReplyError {
		t.Fatalf("expected error for unknown subcommand, got type=%d", reply.Type)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	store := object.NewStore()
	reply := Dispatch(store, "FROBNICATE", nil)
	if reply.Type != ReplyError {
		t.Fatalf("expected error for unknown command, got type=%d", reply.Type)
	}
}
