// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/myworldtech/meet/pkg/logger"
)

const (
	generatedCLIFlagUsage = "generated"

	RemoteAudioFollowSpeaker = "follow-speaker"
	RemoteAudioStartMuted    = "start-muted"
)

var (
	ErrSignalURLNotSet      = errors.New("signal.url must be set")
	ErrInvalidThresholds    = errors.New("quality.low_threshold_kbps must be below quality.high_threshold_kbps")
	ErrInvalidAudioPolicy   = errors.New("session.remote_audio_policy must be follow-speaker or start-muted")
	ErrInvalidDeadline      = errors.New("session.recovery_deadline must be positive")
	ErrProfileWorkersNotSet = errors.New("profile.workers must be positive")
)

type Config struct {
	Signal         SignalConfig  `yaml:"signal,omitempty"`
	Session        SessionConfig `yaml:"session,omitempty"`
	Quality        QualityConfig `yaml:"quality,omitempty"`
	Media          MediaConfig   `yaml:"media,omitempty"`
	Profile        ProfileConfig `yaml:"profile,omitempty"`
	Logging        logger.Config `yaml:"logging,omitempty"`
	PrometheusPort uint32        `yaml:"prometheus_port,omitempty"`

	Development bool `yaml:"development,omitempty"`
}

type SignalConfig struct {
	URL            string        `yaml:"url,omitempty"`
	ConnectTimeout time.Duration `yaml:"connect_timeout,omitempty"`
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty"`
	WriteTimeout   time.Duration `yaml:"write_timeout,omitempty"`
	// reconnection delay grows from base to max
	ReconnectBaseDelay time.Duration `yaml:"reconnect_base_delay,omitempty"`
	ReconnectMaxDelay  time.Duration `yaml:"reconnect_max_delay,omitempty"`
}

type SessionConfig struct {
	UseDataChannel        bool          `yaml:"use_data_channel,omitempty"`
	RecoveryDeadline      time.Duration `yaml:"recovery_deadline,omitempty"`
	RecoveryRetryInterval time.Duration `yaml:"recovery_retry_interval,omitempty"`
	// follow-speaker or start-muted
	RemoteAudioPolicy string        `yaml:"remote_audio_policy,omitempty"`
	SpeakerEnabled    bool          `yaml:"speaker_enabled,omitempty"`
	UpdateDebounce    time.Duration `yaml:"update_debounce,omitempty"`
	// producers announced by "<peerId><suffix>" belong to a screen share and are not consumed
	ScreenShareSuffix string `yaml:"screen_share_suffix,omitempty"`
}

type QualityConfig struct {
	LowThresholdKbps  int           `yaml:"low_threshold_kbps,omitempty"`
	HighThresholdKbps int           `yaml:"high_threshold_kbps,omitempty"`
	SampleInterval    time.Duration `yaml:"sample_interval,omitempty"`
}

type MediaConfig struct {
	ICEServers  []string `yaml:"ice_servers,omitempty"`
	Simulcast   bool     `yaml:"simulcast,omitempty"`
	DisableMDNS bool     `yaml:"disable_mdns,omitempty"`
	// capture devices available to this client
	DisableAudio bool        `yaml:"disable_audio,omitempty"`
	DisableVideo bool        `yaml:"disable_video,omitempty"`
	Cameras      []string    `yaml:"cameras,omitempty"`
	Video        VideoConfig `yaml:"video,omitempty"`
}

type VideoConfig struct {
	Width      uint32 `yaml:"width,omitempty"`
	Height     uint32 `yaml:"height,omitempty"`
	FrameRate  uint32 `yaml:"frame_rate,omitempty"`
	MaxBitrate uint64 `yaml:"max_bitrate,omitempty"`
}

type ProfileConfig struct {
	Redis         RedisConfig   `yaml:"redis,omitempty"`
	CacheSize     int           `yaml:"cache_size,omitempty"`
	LookupTimeout time.Duration `yaml:"lookup_timeout,omitempty"`
	Workers       int           `yaml:"workers,omitempty"`
}

type RedisConfig struct {
	Address   string `yaml:"address,omitempty"`
	Username  string `yaml:"username,omitempty"`
	Password  string `yaml:"password,omitempty"`
	DB        int    `yaml:"db,omitempty"`
	KeyPrefix string `yaml:"key_prefix,omitempty"`
}

func (r RedisConfig) IsConfigured() bool {
	return r.Address != ""
}

var DefaultConfig = Config{
	Signal: SignalConfig{
		ConnectTimeout:     5 * time.Second,
		RequestTimeout:     10 * time.Second,
		WriteTimeout:       5 * time.Second,
		ReconnectBaseDelay: 2 * time.Second,
		ReconnectMaxDelay:  10 * time.Second,
	},
	Session: SessionConfig{
		UseDataChannel:        true,
		RecoveryDeadline:      30 * time.Second,
		RecoveryRetryInterval: time.Second,
		RemoteAudioPolicy:     RemoteAudioFollowSpeaker,
		SpeakerEnabled:        true,
		UpdateDebounce:        100 * time.Millisecond,
		ScreenShareSuffix:     "share",
	},
	Quality: QualityConfig{
		LowThresholdKbps:  500,
		HighThresholdKbps: 2500,
		SampleInterval:    3 * time.Second,
	},
	Media: MediaConfig{
		ICEServers:  []string{"stun:stun.l.google.com:19302"},
		Simulcast:   true,
		DisableMDNS: true,
		Cameras:     []string{"front", "back"},
		Video: VideoConfig{
			Width:      640,
			Height:     480,
			FrameRate:  30,
			MaxBitrate: 1_200_000,
		},
	},
	Profile: ProfileConfig{
		Redis: RedisConfig{
			KeyPrefix: "users:",
		},
		CacheSize:     256,
		LookupTimeout: 3 * time.Second,
		Workers:       4,
	},
}

// NewConfig layers confString and the CLI flags in c on top of DefaultConfig
func NewConfig(confString string, strictMode bool, c *cli.Context, baseFlags []cli.Flag) (*Config, error) {
	// start with defaults
	marshalled, err := yaml.Marshal(&DefaultConfig)
	if err != nil {
		return nil, err
	}

	var conf Config
	err = yaml.Unmarshal(marshalled, &conf)
	if err != nil {
		return nil, err
	}

	if confString != "" {
		decoder := yaml.NewDecoder(strings.NewReader(confString))
		decoder.KnownFields(strictMode)
		if err := decoder.Decode(&conf); err != nil {
			return nil, fmt.Errorf("could not parse config: %v", err)
		}
	}

	if c != nil {
		if err := conf.updateFromCLI(c, baseFlags); err != nil {
			return nil, err
		}
	}

	// expand env vars and home dir in the signalling url, handy for file:// style dev setups
	conf.Signal.URL = os.ExpandEnv(conf.Signal.URL)
	if strings.HasPrefix(conf.Signal.URL, "~") {
		expanded, err := homedir.Expand(conf.Signal.URL)
		if err != nil {
			return nil, err
		}
		conf.Signal.URL = expanded
	}

	if conf.Logging.Level == "" && conf.Development {
		conf.Logging.Level = "debug"
	}

	return &conf, nil
}

func (conf *Config) Validate() error {
	if conf.Signal.URL == "" {
		return ErrSignalURLNotSet
	}
	if conf.Quality.LowThresholdKbps >= conf.Quality.HighThresholdKbps {
		return ErrInvalidThresholds
	}
	switch conf.Session.RemoteAudioPolicy {
	case RemoteAudioFollowSpeaker, RemoteAudioStartMuted:
	default:
		return errors.Wrap(ErrInvalidAudioPolicy, conf.Session.RemoteAudioPolicy)
	}
	if conf.Session.RecoveryDeadline <= 0 {
		return ErrInvalidDeadline
	}
	if conf.Profile.Workers <= 0 {
		return ErrProfileWorkersNotSet
	}
	return nil
}

type configNode struct {
	TypeNode  reflect.Value
	TagPrefix string
}

func (conf *Config) ToCLIFlagNames(existingFlags []cli.Flag) map[string]reflect.Value {
	existingFlagNames := map[string]bool{}
	for _, flag := range existingFlags {
		for _, flagName := range flag.Names() {
			existingFlagNames[flagName] = true
		}
	}

	flagNames := map[string]reflect.Value{}
	var currNode configNode
	nodes := []configNode{{reflect.ValueOf(conf).Elem(), ""}}
	for len(nodes) > 0 {
		currNode, nodes = nodes[0], nodes[1:]
		for i := 0; i < currNode.TypeNode.NumField(); i++ {
			field := currNode.TypeNode.Type().Field(i)
			yamlTag := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if yamlTag == "" || yamlTag == "-" {
				continue
			}
			yamlPath := yamlTag
			if currNode.TagPrefix != "" {
				yamlPath = fmt.Sprintf("%s.%s", currNode.TagPrefix, yamlTag)
			}
			if existingFlagNames[yamlPath] {
				continue
			}

			value := currNode.TypeNode.Field(i)
			if value.Kind() == reflect.Struct {
				nodes = append(nodes, configNode{value, yamlPath})
			} else {
				flagNames[yamlPath] = value
			}
		}
	}

	return flagNames
}

// GenerateCLIFlags exposes every scalar config key as a flag, eg. --quality.low_threshold_kbps
func GenerateCLIFlags(existingFlags []cli.Flag, hidden bool) ([]cli.Flag, error) {
	blankConfig := &Config{}
	flags := make([]cli.Flag, 0)
	for name, value := range blankConfig.ToCLIFlagNames(existingFlags) {
		var flag cli.Flag
		envVar := fmt.Sprintf("MEET_%s", strings.ToUpper(strings.Replace(name, ".", "_", -1)))

		if value.Type() == reflect.TypeOf(time.Duration(0)) {
			flags = append(flags, &cli.DurationFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			})
			continue
		}

		switch kind := value.Kind(); kind {
		case reflect.Bool:
			flag = &cli.BoolFlag{
				Name:   name,
				Usage:  generatedCLIFlagUsage,
				Hidden: hidden,
			}
		case reflect.String:
			flag = &cli.StringFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case reflect.Int, reflect.Int32, reflect.Int64:
			flag = &cli.Int64Flag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case reflect.Uint32, reflect.Uint64:
			flag = &cli.Uint64Flag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case reflect.Slice:
			flag = &cli.StringSliceFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		default:
			return flags, fmt.Errorf("cli flag generation unsupported for config type: %s is a %s", name, kind.String())
		}

		flags = append(flags, flag)
	}

	return flags, nil
}

func (conf *Config) updateFromCLI(c *cli.Context, baseFlags []cli.Flag) error {
	generatedFlagNames := conf.ToCLIFlagNames(baseFlags)
	for _, flag := range c.App.Flags {
		flagName := flag.Names()[0]
		if !c.IsSet(flagName) {
			continue
		}

		configValue, ok := generatedFlagNames[flagName]
		if !ok {
			continue
		}

		if configValue.Type() == reflect.TypeOf(time.Duration(0)) {
			configValue.SetInt(int64(c.Duration(flagName)))
			continue
		}

		switch kind := configValue.Kind(); kind {
		case reflect.Bool:
			configValue.SetBool(c.Bool(flagName))
		case reflect.String:
			configValue.SetString(c.String(flagName))
		case reflect.Int, reflect.Int32, reflect.Int64:
			configValue.SetInt(c.Int64(flagName))
		case reflect.Uint32, reflect.Uint64:
			configValue.SetUint(c.Uint64(flagName))
		case reflect.Slice:
			configValue.Set(reflect.ValueOf(c.StringSlice(flagName)))
		default:
			return fmt.Errorf("unsupported generated cli flag type for config: %s is a %s", flagName, kind.String())
		}
	}

	if c.IsSet("dev") {
		conf.Development = c.Bool("dev")
	}
	if c.IsSet("url") {
		conf.Signal.URL = c.String("url")
	}
	if c.IsSet("log-level") {
		conf.Logging.Level = c.String("log-level")
	}
	if c.IsSet("redis-host") {
		conf.Profile.Redis.Address = c.String("redis-host")
	}
	if c.IsSet("redis-password") {
		conf.Profile.Redis.Password = c.String("redis-password")
	}
	return nil
}

func InitLoggerFromConfig(conf *logger.Config) error {
	return logger.InitFromConfig(*conf, "meet")
}
