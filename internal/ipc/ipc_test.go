package ipc_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"confmind/internal/ipc"
	"confmind/internal/pipeline"
	"confmind/internal/testsupport"
)

func startServer(t *testing.T) (*ipc.Client, *pipeline.Pipeline) {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	p, err := pipeline.New(cfg, nil)
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}

	socket := filepath.Join(t.TempDir(), "confmind.sock")
	srv, err := ipc.NewServer(context.Background(), socket, p, nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	srv.Serve()
	t.Cleanup(srv.Close)

	client, err := ipc.Dial(socket)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, p
}

func TestIngestAskOverIPC(t *testing.T) {
	client, _ := startServer(t)

	ingest, err := client.Ingest(ipc.IngestRequest{
		Transcript: "Alice: I love kubernetes and docker.\nBob: kubernetes is overrated.",
		Name:       "IPC Conf",
	})
	if err != nil {
		t.Fatalf("ingest call: %v", err)
	}
	if !ingest.OK {
		t.Fatalf("ingest rejected: %s", ingest.Message)
	}
	if len(ingest.Speakers) != 2 {
		t.Fatalf("speakers = %d, want 2", len(ingest.Speakers))
	}

	ask, err := client.Ask(ipc.AskRequest{Question: "What about kubernetes?", Conference: "IPC Conf"})
	if err != nil {
		t.Fatalf("ask call: %v", err)
	}
	if !ask.OK {
		t.Fatalf("ask failed: %s", ask.Message)
	}
	if !strings.Contains(ask.Answer, "Alice") || !strings.Contains(ask.Answer, "Bob") {
		t.Errorf("answer missing speakers:\n%s", ask.Answer)
	}
}

func TestIngestValidationOverIPC(t *testing.T) {
	client, _ := startServer(t)

	resp, err := client.Ingest(ipc.IngestRequest{Transcript: "   "})
	if err != nil {
		t.Fatalf("ingest call: %v", err)
	}
	if resp.OK {
		t.Fatal("blank transcript accepted")
	}
	if resp.Message == "" {
		t.Error("rejection carries no message")
	}
}

func TestNotFoundIsMessageNotFault(t *testing.T) {
	client, _ := startServer(t)

	ask, err := client.Ask(ipc.AskRequest{Question: "anything", Conference: "ghost"})
	if err != nil {
		t.Fatalf("not-found surfaced as RPC fault: %v", err)
	}
	if ask.OK || !strings.Contains(ask.Message, "not found") {
		t.Errorf("unexpected response: %+v", ask)
	}

	del, err := client.Delete("ghost")
	if err != nil {
		t.Fatalf("delete call: %v", err)
	}
	if del.OK {
		t.Error("delete of absent mind reported success")
	}
}

func TestListSpeakersThemesTensionsOverIPC(t *testing.T) {
	client, p := startServer(t)

	transcript := "Alice: However, I love kubernetes. However, docker rules. However, the cloud wins.\n" +
		"Bob: " + strings.Repeat("kubernetes kubernetes deployment talk. ", 2)
	if _, err := p.Ingest(context.Background(), transcript, "Full Conf", "t.txt"); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	list, err := client.List()
	if err != nil {
		t.Fatalf("list call: %v", err)
	}
	if len(list.Minds) != 1 || list.Minds[0].Name != "Full Conf" {
		t.Fatalf("unexpected listing: %+v", list.Minds)
	}

	speakers, err := client.Speakers("Full Conf")
	if err != nil {
		t.Fatalf("speakers call: %v", err)
	}
	if !speakers.OK || len(speakers.Speakers) != 2 {
		t.Errorf("speakers response: %+v", speakers)
	}

	themes, err := client.Themes("Full Conf")
	if err != nil {
		t.Fatalf("themes call: %v", err)
	}
	if !themes.OK {
		t.Errorf("themes response: %+v", themes)
	}
	found := false
	for _, theme := range themes.Themes {
		if theme.Term == "kubernetes" {
			found = true
		}
	}
	if !found {
		t.Errorf("kubernetes not among themes: %+v", themes.Themes)
	}

	tensions, err := client.Tensions("Full Conf")
	if err != nil {
		t.Fatalf("tensions call: %v", err)
	}
	if !tensions.OK || len(tensions.Tensions) != 1 {
		t.Errorf("tensions response: %+v", tensions)
	}
}
