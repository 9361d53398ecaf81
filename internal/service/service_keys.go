package service

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/crypto"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/internal/workers"
	"github.com/MKhiriev/go-identity-vault/models"
)

// keyService runs RSA generation on keygenPool and password-derived
// envelope work on cryptoPool.
type keyService struct {
	keyRepository  store.KeyRepository
	userRepository store.UserRepository

	credentials crypto.CredentialManager
	vault       crypto.KeyVault

	// passwords gates Rotate and Sign behind the account lockout.
	passwords *passwordGuard

	cryptoPool *workers.Pool
	keygenPool *workers.Pool

	auditService AuditService

	now    func() time.Time
	logger *logger.Logger
}

func NewKeyService(
	storages *store.Storages,
	credentials crypto.CredentialManager,
	vault crypto.KeyVault,
	cryptoPool, keygenPool *workers.Pool,
	auditService AuditService,
	cfg config.App,
	logger *logger.Logger,
) KeyService {
	return &keyService{
		keyRepository:  storages.KeyRepository,
		userRepository: storages.UserRepository,
		credentials:    credentials,
		vault:          vault,
		passwords:      newPasswordGuard(storages.UserRepository, credentials, cryptoPool, auditService, cfg),
		cryptoPool:     cryptoPool,
		keygenPool:     keygenPool,
		auditService:   auditService,
		now:            utcNow,
		logger:         logger,
	}
}

func (k *keyService) GenerateKey(ctx context.Context, password string) (models.EncryptionKey, error) {
	log := logger.FromContext(ctx)

	var (
		publicPEM string
		wrapped   []byte
	)
	err := k.keygenPool.Do(ctx, func() error {
		var err error
		publicPEM, wrapped, err = k.vault.GenerateKeyPair()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*keyService.GenerateKey").Msg("error generating key pair")
		return models.EncryptionKey{}, fmt.Errorf("error generating key pair: %w", err)
	}

	salt, err := k.credentials.GenerateSalt()
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("error generating key salt: %w", err)
	}

	var blob, iv string
	err = k.cryptoPool.Do(ctx, func() error {
		var err error
		blob, iv, err = k.vault.EncryptPrivateKey(wrapped, password, salt)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*keyService.GenerateKey").Msg("error encrypting private key")
		return models.EncryptionKey{}, fmt.Errorf("error encrypting private key: %w", err)
	}

	return models.EncryptionKey{
		PublicKey:           publicPEM,
		EncryptedPrivateKey: blob,
		IV:                  iv,
		Salt:                salt,
		Algorithm:           models.KeyAlgorithm,
		IsActive:            true,
		CreatedAt:           k.now(),
	}, nil
}

func (k *keyService) Reencrypt(ctx context.Context, key models.EncryptionKey, oldPassword, newPassword string) (models.EncryptionKey, error) {
	err := k.cryptoPool.Do(ctx, func() error {
		blob, salt, iv, err := k.vault.ReencryptPrivateKey(key.EncryptedPrivateKey, oldPassword, key.Salt, key.IV, newPassword)
		if err != nil {
			return err
		}
		key.EncryptedPrivateKey, key.Salt, key.IV = blob, salt, iv
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyService.Reencrypt").Int64("key_id", key.ID).Msg("error re-encrypting private key")
		return models.EncryptionKey{}, fmt.Errorf("error re-encrypting private key: %w", err)
	}

	return key, nil
}

// Rotate replaces the active key pair after checking the account password.
// The old key stays in the datastore, deactivated.
func (k *keyService) Rotate(ctx context.Context, userID int64, password string) (models.EncryptionKey, error) {
	log := logger.FromContext(ctx)

	user, err := k.findUser(ctx, userID)
	if err != nil {
		return models.EncryptionKey{}, err
	}

	if err = k.passwords.Check(ctx, user, password, checkKeyRotate); err != nil {
		return models.EncryptionKey{}, err
	}

	key, err := k.GenerateKey(ctx, password)
	if err != nil {
		return models.EncryptionKey{}, err
	}

	rotated, err := k.keyRepository.Rotate(ctx, userID, key, k.now())
	if err != nil {
		log.Err(err).Str("func", "*keyService.Rotate").Int64("user_id", userID).Msg("error storing rotated key")
		return models.EncryptionKey{}, fmt.Errorf("error storing rotated key: %w", err)
	}

	k.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionKeyRotated,
		ResourceType: string(models.ResourceKeys),
		ResourceID:   strconv.FormatInt(rotated.ID, 10),
	})

	return rotated, nil
}

// Sign decrypts the active private key with password for the duration of
// one RSA-PSS signature. The password is checked against the account
// lockout first, so signing cannot serve as an unthrottled oracle.
func (k *keyService) Sign(ctx context.Context, userID int64, req models.SignRequest) (models.SignResponse, error) {
	if req.Password == "" || req.Payload == "" {
		return models.SignResponse{}, ErrInvalidDataProvided
	}

	user, err := k.findUser(ctx, userID)
	if err != nil {
		return models.SignResponse{}, err
	}

	if err = k.passwords.Check(ctx, user, req.Password, checkSign); err != nil {
		return models.SignResponse{}, err
	}

	key, err := k.PublicKey(ctx, userID)
	if err != nil {
		return models.SignResponse{}, err
	}

	var signature []byte
	err = k.cryptoPool.Do(ctx, func() error {
		return k.vault.WithPrivateKey(key.EncryptedPrivateKey, req.Password, key.Salt, key.IV, func(pk *rsa.PrivateKey) error {
			var err error
			signature, err = k.vault.Sign(pk, []byte(req.Payload))
			return err
		})
	})
	if err != nil {
		if errors.Is(err, crypto.ErrDecryptionFailed) {
			return models.SignResponse{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*keyService.Sign").Int64("user_id", userID).Msg("error signing payload")
		return models.SignResponse{}, fmt.Errorf("error signing payload: %w", err)
	}

	k.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionKeyUsed,
		ResourceType: string(models.ResourceKeys),
		ResourceID:   strconv.FormatInt(key.ID, 10),
		Details:      models.JSONMap{"operation": "sign"},
	})

	return models.SignResponse{
		Signature: base64.StdEncoding.EncodeToString(signature),
		KeyID:     key.ID,
		PublicKey: key.PublicKey,
	}, nil
}

func (k *keyService) PublicKey(ctx context.Context, userID int64) (models.EncryptionKey, error) {
	key, err := k.keyRepository.FindActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoActiveKey) {
			return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrResourceNotFound, err)
		}
		return models.EncryptionKey{}, fmt.Errorf("error finding active key: %w", err)
	}
	return key, nil
}

func (k *keyService) findUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := k.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrResourceNotFound
		}
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}
	return user, nil
}
