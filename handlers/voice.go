package handlers

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"roomi/models"
	"roomi/services/agent"
	"roomi/services/storage"

	speech "cloud.google.com/go/speech/apiv1"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
)

const (
	MaxFileSize      = 5 * 1024 * 1024 // 5MB
	AllowedExtension = ".wav"
)

type waveHeader struct {
	RiffTag       [4]byte
	FileSize      uint32
	WaveTag       [4]byte
	FmtTag        [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataTag       [4]byte
	DataSize      uint32
}

func parseWaveHeader(data []byte) (*waveHeader, error) {
	if len(data) < 44 {
		return nil, errors.New("invalid WAV header length")
	}

	var header waveHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if string(header.RiffTag[:]) != "RIFF" || string(header.WaveTag[:]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE file")
	}
	return &header, nil
}

// VoiceHandler turns uploaded call audio into a conversational turn.
type VoiceHandler struct {
	Agent        agent.AgentService
	Archive      storage.ArchiveService // optional; audio is archived best-effort
	SpeechAPIKey string
	Logger       *zap.Logger
}

func NewVoiceHandler(agentSvc agent.AgentService, archive storage.ArchiveService, speechAPIKey string, logger *zap.Logger) *VoiceHandler {
	return &VoiceHandler{Agent: agentSvc, Archive: archive, SpeechAPIKey: speechAPIKey, Logger: logger}
}

// HandleVoiceTurn handles POST /agent/voice: transcribes a WAV clip and
// runs the transcript through the agent.
func (h *VoiceHandler) HandleVoiceTurn(c *gin.Context) {
	sessionID := c.DefaultPostForm("session_id", uuid.New().String())
	language := c.DefaultPostForm("language", "en-US")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "audio file is required",
			"details": err.Error(),
		})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != AllowedExtension {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid file type",
			"details": fmt.Sprintf("expected %s, got %s", AllowedExtension, ext),
		})
		return
	}

	tempFile, err := os.CreateTemp("", "call-*.wav")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create temp file", "details": err.Error()})
		return
	}
	defer os.Remove(tempFile.Name())
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, io.LimitReader(file, MaxFileSize)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save audio file", "details": err.Error()})
		return
	}

	audioData, err := os.ReadFile(tempFile.Name())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read audio", "details": err.Error()})
		return
	}

	wav, err := parseWaveHeader(audioData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid WAV file", "details": err.Error()})
		return
	}

	transcript, err := h.transcribe(c.Request.Context(), audioData, wav, language)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "speech recognition failed", "details": err.Error()})
		return
	}

	h.archiveClip(tempFile.Name(), sessionID, audioData)

	resp, err := h.Agent.ProcessTurn(c.Request.Context(), models.AgentRequest{
		SessionID: sessionID,
		Text:      transcript,
	})
	if err != nil {
		h.Logger.Error("agent turn failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "agent turn failed", "details": err.Error()})
		return
	}
	resp.Transcript = transcript

	c.JSON(http.StatusOK, resp)
}

func (h *VoiceHandler) transcribe(ctx context.Context, audioData []byte, wav *waveHeader, language string) (string, error) {
	client, err := speech.NewClient(ctx, option.WithAPIKey(h.SpeechAPIKey))
	if err != nil {
		return "", fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   int32(wav.SampleRate),
			LanguageCode:      language,
			AudioChannelCount: int32(wav.NumChannels),
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audioData,
			},
		},
	}

	resp, err := client.Recognize(ctx, req)
	if err != nil {
		return "", err
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	return strings.TrimSpace(transcript.String()), nil
}

// archiveClip uploads the clip in the background. Failures are logged only.
func (h *VoiceHandler) archiveClip(path, sessionID string, audioData []byte) {
	if h.Archive == nil {
		return
	}

	// The temp file is removed when the request finishes; re-write a copy
	// the goroutine owns.
	archivePath := path + ".archive"
	if err := os.WriteFile(archivePath, audioData, 0o600); err != nil {
		h.Logger.Warn("failed to stage audio for archive", zap.Error(err))
		return
	}

	go func() {
		defer os.Remove(archivePath)
		publicID, err := h.Archive.ArchiveCallAudio(context.Background(), archivePath, sessionID+"-"+uuid.NewString())
		if err != nil {
			h.Logger.Warn("failed to archive call audio", zap.String("session_id", sessionID), zap.Error(err))
			return
		}
		h.Logger.Info("call audio archived", zap.String("session_id", sessionID), zap.String("public_id", publicID))
	}()
}
