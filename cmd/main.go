package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/dinakars/hebrew-call-center/internal/ai"
	"github.com/dinakars/hebrew-call-center/internal/call"
	"github.com/dinakars/hebrew-call-center/internal/nikud"
	"github.com/dinakars/hebrew-call-center/internal/speech"
	"github.com/dinakars/hebrew-call-center/internal/transcript"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	outputDir = "output"
	logsDir   = "logs"
)

func main() {

	// =========================================================================
	// ENV / PREREQUISITES
	// =========================================================================

	_ = godotenv.Load()

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Fatal("OPENAI_API_KEY is not set; put it in your .env")
	}

	for _, dir := range []string{outputDir, logsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (AI / NIKUD / TTS / STT)
	// =========================================================================

	openAIClient := ai.NewOpenAIClient()

	var ttsClient speech.TTSClient
	if os.Getenv("ELEVENLABS_API_KEY") != "" {
		ttsClient = speech.NewElevenLabsClient()
	} else {
		log.Printf("[main] ELEVENLABS_API_KEY not set, using OpenAI TTS")
		ttsClient = speech.NewOpenAITTSClient()
	}

	phonikud := nikud.NewPhonikudCLI()
	if !phonikud.ModelAvailable() {
		log.Printf("[main] phonikud model not found; lines will be synthesized without nikud")
	}

	// =========================================================================
	// SERVICES
	// =========================================================================

	dialogueService := ai.NewDialogueService(openAIClient)
	nikudService := nikud.NewService(phonikud)

	speechService := speech.NewService(
		openAIClient, // Whisper
		ttsClient,
		outputDir,
	)

	transcriptLogger := transcript.NewFileLogger(outputDir, logsDir)

	callService := call.NewService(
		dialogueService,
		nikudService,
		speechService,
		speechService,
		transcriptLogger,
	)

	// =========================================================================
	// RUN SIMULATION
	// =========================================================================

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "starting hebrew call center simulation",
		Service: "hebrew-call-center",
	})

	start := time.Now()
	report := callService.RunSimulation(context.Background())
	elapsed := time.Since(start)

	printResults(report, elapsed)

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "simulation finished: " + report.Status,
		Service: "hebrew-call-center",
	})

	if report.Status != "completed" {
		os.Exit(1)
	}
}

func printResults(report call.Report, elapsed time.Duration) {
	bar := strings.Repeat("=", 60)

	fmt.Println("\n" + bar)
	fmt.Println("SIMULATION RESULTS")
	fmt.Println(bar)

	if report.Status != "completed" {
		fmt.Printf("[ERROR] Status: %s\n", strings.ToUpper(report.Status))
		fmt.Printf("[ERROR] %s\n", report.Error)
		return
	}

	fmt.Printf("[OK] Status: %s\n", strings.ToUpper(report.Status))
	fmt.Printf("[CALL] Session: %s\n", report.SessionID)
	fmt.Printf("[CALL] Total Steps: %d\n", report.TotalSteps)
	fmt.Printf("[OK] Successful Steps: %d\n", report.SuccessfulSteps)
	fmt.Printf("[RESULT] Outcome: %s\n", report.Outcome)

	fmt.Println("\n[FILES] Generated Files:")
	fmt.Printf("   - Transcript: %s\n", filepath.Join(outputDir, "transcript.txt"))
	fmt.Printf("   - System Log: %s\n", filepath.Join(logsDir, "call_log.txt"))

	printAudioFiles()

	fmt.Printf("\n[TIME] Total Execution Time: %.2f seconds\n", elapsed.Seconds())
	fmt.Println("\n" + bar)
	fmt.Println("SIMULATION COMPLETED")
	fmt.Println(bar)
}

func printAudioFiles() {
	matches, err := filepath.Glob(filepath.Join(outputDir, "audio_step_*"))
	if err != nil || len(matches) == 0 {
		return
	}
	sort.Strings(matches)

	fmt.Println("\n[AUDIO] Audio Files Generated:")
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		line := fmt.Sprintf("   - %s (%s", filepath.Base(path), humanize.Bytes(uint64(info.Size())))
		if dur, err := speech.AudioDuration(context.Background(), path); err == nil {
			line += fmt.Sprintf(", %.1fs", dur)
		}
		fmt.Println(line + ")")
	}
}
