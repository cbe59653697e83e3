package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/subsearch/internal/assets"
	"github.com/patrickprogramme/subsearch/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	TranscriptDir string `yaml:"transcript_dir"`
	OutputDir     string `yaml:"output_dir"`

	// Résultats de recherche
	SaveResults  string `yaml:"save_results"` // "never", "ask", "always"
	ResultFormat string `yaml:"result_format"`

	// Presse-papier
	CopyToClipboard   bool `yaml:"copy_to_clipboard"`
	TermFromClipboard bool `yaml:"term_from_clipboard"`

	// Recherche
	LiteralSearch bool `yaml:"literal_search"` // true = métacaractères échappés
	ShowMusicCues bool `yaml:"show_music_cues"`

	// Affichage
	MaxPreviewLines int `yaml:"max_preview_lines"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Chemins
	c.TranscriptDir = "."
	c.OutputDir = "."

	// Résultats
	c.SaveResults = "ask"
	c.ResultFormat = "md"

	// Presse-papier
	c.CopyToClipboard = false
	c.TermFromClipboard = true

	// Recherche
	c.LiteralSearch = true
	c.ShowMusicCues = false

	// Affichage
	c.MaxPreviewLines = 20

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "subsearch.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	// lire le YAML brut et déserialiser dans cfg (les champs présents écraseront les defaults)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		// re-normaliser au cas où la migration a modifié des valeurs
		cfg.normalizeConfig()
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	// lire l'asset embarqué via assets.Embedded et DefaultConfigAsset
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// s'assurer que le dossier parent existe
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	// log utile pour le debugging
	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.TranscriptDir = filepath.Clean(c.TranscriptDir)
	c.OutputDir = filepath.Clean(c.OutputDir)

	// Trim and normalize strings
	c.ResultFormat = strings.TrimSpace(strings.ToLower(c.ResultFormat))
	if c.ResultFormat == "" {
		c.ResultFormat = "md"
	}

	c.SaveResults = strings.TrimSpace(strings.ToLower(c.SaveResults))
	switch c.SaveResults {
	case "never", "ask", "always":
		// valeurs reconnues
	default:
		c.SaveResults = "ask"
	}

	if c.MaxPreviewLines <= 0 {
		c.MaxPreviewLines = 20
	}
}
