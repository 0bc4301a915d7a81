package main

// Run a resume and job description through the rewrite flow from the command
// line, without the HTTP server:
//   go run ./cmd/prompttest -resume resume.pdf -jd jd.txt
// Pass -dry-run to print the built prompt instead of calling the provider.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/byteKumar/pepperuni/internal/extract"
	"github.com/byteKumar/pepperuni/internal/llm"
	"github.com/byteKumar/pepperuni/internal/llm/openai"
	"github.com/byteKumar/pepperuni/internal/shared/config"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume file (pdf or docx)")
	jdPath := flag.String("jd", "", "Path to job description text file")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	dryRun := flag.Bool("dry-run", false, "Print the built prompt without calling the provider")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}

	mimeType, err := mimeFromExt(*resumePath)
	if err != nil {
		exitErr(err.Error())
	}

	resumeBytes, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}

	resumeText, err := extract.New().Extract(context.Background(), resumeBytes, mimeType, filepath.Base(*resumePath))
	if err != nil {
		exitErr(fmt.Sprintf("extract resume text: %v", err))
	}

	jobDescription := ""
	if strings.TrimSpace(*jdPath) != "" {
		jdBytes, err := os.ReadFile(*jdPath)
		if err != nil {
			exitErr(fmt.Sprintf("read job description: %v", err))
		}
		jobDescription = string(jdBytes)
	}

	if *dryRun {
		fmt.Println(llm.BuildRewritePrompt(resumeText, jobDescription))
		return
	}

	client, err := openai.NewClient(cfg.OpenAIAPIKey, *model)
	if err != nil {
		exitErr(fmt.Sprintf("build client: %v", err))
	}

	rewritten, score, err := client.Rewrite(context.Background(), resumeText, jobDescription)
	if err != nil {
		exitErr(fmt.Sprintf("rewrite: %v", err))
	}

	fmt.Println(rewritten)
	fmt.Printf("\nscore: %s\n", score)
}

func mimeFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf", nil
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
